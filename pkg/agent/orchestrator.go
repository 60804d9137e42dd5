package agent

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/offgrid-ops/commandcenter/ent/message"
	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
	"github.com/offgrid-ops/commandcenter/pkg/conversation"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

const clarificationReply = "I didn't catch a question there. Ask me about battery status, energy planning, or anything in the site's knowledge base."

// AskRequest is one inbound user query.
type AskRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}

// AskResult is the query output contract.
type AskResult struct {
	Response      string `json:"response"`
	AgentRole     string `json:"agent_role"`
	DurationMS    int64  `json:"duration_ms"`
	SessionID     string `json:"session_id"`
	ContextTokens int    `json:"context_tokens"`
	CacheHit      bool   `json:"cache_hit"`
	QueryType     string `json:"query_type"`
}

// Orchestrator runs one query end to end: context bundle, routing,
// persistence, execution record.
type Orchestrator struct {
	cfg           *config.Config
	contexts      *contextmgr.Manager
	manager       *Manager
	conversations *conversation.Service
	executions    *services.ExecutionService
	logger        *slog.Logger
}

// NewOrchestrator creates the query orchestrator.
func NewOrchestrator(cfg *config.Config, contexts *contextmgr.Manager, manager *Manager, conversations *conversation.Service, executions *services.ExecutionService) *Orchestrator {
	return &Orchestrator{
		cfg:           cfg,
		contexts:      contexts,
		manager:       manager,
		conversations: conversations,
		executions:    executions,
		logger:        slog.With("component", "orchestrator"),
	}
}

// Ask answers one user query. Sub-source failures degrade silently; only
// a storage outage that prevents persisting the result is surfaced.
func (o *Orchestrator) Ask(ctx context.Context, req AskRequest) (*AskResult, error) {
	start := time.Now()

	deadline := o.cfg.Query.Deadline
	if deadline <= 0 {
		deadline = 60 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	conv, err := o.conversations.EnsureSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	sessionID := conv.ID

	// A query with no word content gets a clarification prompt; no tools
	// run and no model is called.
	if !hasContent(req.Message) {
		if req.Message != "" {
			if _, err := o.conversations.Append(ctx, conversation.AppendRequest{
				SessionID: sessionID,
				Role:      message.RoleUser,
				Content:   req.Message,
			}); err != nil {
				return nil, err
			}
		}
		return o.finish(ctx, start, &ExecutionContext{
			SessionID: sessionID,
			Query:     req.Message,
			QueryType: config.QueryTypeGeneral,
		}, &RouteResult{Response: clarificationReply, AgentRole: RoleManager}, nil, false, 0)
	}

	bundle, err := o.contexts.Bundle(ctx, req.Message, sessionID, req.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := o.conversations.Append(ctx, conversation.AppendRequest{
		SessionID: sessionID,
		Role:      message.RoleUser,
		Content:   req.Message,
	}); err != nil {
		return nil, err
	}

	execCtx := &ExecutionContext{
		Query:      req.Message,
		SessionID:  sessionID,
		UserID:     req.UserID,
		QueryType:  bundle.QueryType,
		Bundle:     bundle,
		BundleText: contextmgr.Format(bundle),
		Deadline:   start.Add(deadline),
	}

	result, routeErr := o.manager.Route(ctx, execCtx)
	if routeErr != nil && result == nil {
		// Record the failure before surfacing it.
		o.record(ctx, execCtx, "", time.Since(start).Milliseconds(), bundle.TotalTokens, bundle.CacheHit, routeErr)
		return nil, routeErr
	}

	return o.finish(ctx, start, execCtx, result, routeErr, bundle.CacheHit, bundle.TotalTokens)
}

// finish persists the assistant turn and the execution record, then
// assembles the response.
func (o *Orchestrator) finish(ctx context.Context, start time.Time, execCtx *ExecutionContext, result *RouteResult, routeErr error, cacheHit bool, contextTokens int) (*AskResult, error) {
	durationMS := time.Since(start).Milliseconds()

	if _, err := o.conversations.Append(ctx, conversation.AppendRequest{
		SessionID:  execCtx.SessionID,
		Role:       message.RoleAssistant,
		Content:    result.Response,
		AgentRole:  result.AgentRole,
		DurationMS: durationMS,
		Tokens:     contextTokens,
		CacheHit:   &cacheHit,
		QueryType:  string(execCtx.QueryType),
	}); err != nil {
		return nil, err
	}

	o.record(ctx, execCtx, result.AgentRole, durationMS, contextTokens, cacheHit, routeErr)

	return &AskResult{
		Response:      result.Response,
		AgentRole:     result.AgentRole,
		DurationMS:    durationMS,
		SessionID:     execCtx.SessionID,
		ContextTokens: contextTokens,
		CacheHit:      cacheHit,
		QueryType:     string(execCtx.QueryType),
	}, nil
}

func (o *Orchestrator) record(ctx context.Context, execCtx *ExecutionContext, agentRole string, durationMS int64, tokens int, cacheHit bool, routeErr error) {
	if agentRole == "" {
		agentRole = RoleManager
	}

	rec := services.ExecutionRecord{
		SessionID:  execCtx.SessionID,
		AgentRole:  agentRole,
		QueryType:  string(execCtx.QueryType),
		TokensIn:   tokens,
		CacheHit:   cacheHit,
		DurationMS: durationMS,
		ToolsUsed:  execCtx.ToolsInvoked,
	}
	switch {
	case errors.Is(routeErr, ErrMaxIterations):
		rec.Error = "max_iterations"
	case errors.Is(routeErr, services.ErrDeadline):
		rec.Error = "deadline"
	case routeErr != nil:
		rec.Error = "model_error"
	}

	if _, err := o.executions.Record(ctx, rec); err != nil {
		o.logger.Error("Failed to record execution", "session_id", execCtx.SessionID, "error", err)
	}
}

// hasContent reports whether the query contains at least one letter or
// digit.
func hasContent(query string) bool {
	return strings.IndexFunc(query, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
