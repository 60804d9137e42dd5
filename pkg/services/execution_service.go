package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/offgrid-ops/commandcenter/ent"
	"github.com/offgrid-ops/commandcenter/ent/agentexecution"
)

// ExecutionService records one row per answered query for observability.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// ExecutionRecord is the input for recording a completed query.
type ExecutionRecord struct {
	SessionID  string
	AgentRole  string
	QueryType  string
	TokensIn   int
	CacheHit   bool
	DurationMS int64
	ToolsUsed  []string
	Error      string // "", "deadline", or "max_iterations"
}

// Record persists an execution record. Recording failures must never fail
// the query itself, so callers log the returned error and move on.
func (s *ExecutionService) Record(ctx context.Context, rec ExecutionRecord) (*ent.AgentExecution, error) {
	if rec.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if rec.AgentRole == "" {
		return nil, NewValidationError("agent_role", "required")
	}

	create := s.client.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetSessionID(rec.SessionID).
		SetAgentRole(rec.AgentRole).
		SetTokensIn(rec.TokensIn).
		SetCacheHit(rec.CacheHit).
		SetDurationMs(int(rec.DurationMS)).
		SetToolsUsed(rec.ToolsUsed).
		SetCreatedAt(time.Now())
	if rec.QueryType != "" {
		create = create.SetQueryType(rec.QueryType)
	}
	if rec.Error != "" {
		create = create.SetError(rec.Error)
	}

	exec, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record execution: %w", err)
	}

	return exec, nil
}

// ListFilter narrows List results. Zero values mean no filtering.
type ListFilter struct {
	SessionID string
	AgentRole string
	Limit     int
}

// List returns execution records, newest first.
func (s *ExecutionService) List(ctx context.Context, filter ListFilter) ([]*ent.AgentExecution, error) {
	q := s.client.AgentExecution.Query()
	if filter.SessionID != "" {
		q = q.Where(agentexecution.SessionIDEQ(filter.SessionID))
	}
	if filter.AgentRole != "" {
		q = q.Where(agentexecution.AgentRoleEQ(filter.AgentRole))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	execs, err := q.
		Order(ent.Desc(agentexecution.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	return execs, nil
}
