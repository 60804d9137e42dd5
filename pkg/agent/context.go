// Package agent runs user queries through the manager/specialist pipeline.
package agent

import (
	"time"

	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/contextmgr"
)

// ExecutionContext carries one query's state through routing and tool
// calls. Nothing here outlives the request; cross-request state lives in
// the conversation store.
type ExecutionContext struct {
	Query      string
	SessionID  string
	UserID     string
	QueryType  config.QueryType
	Bundle     *contextmgr.ContextBundle
	BundleText string
	Deadline   time.Time

	// ToolsInvoked accumulates tool names in invocation order for the
	// execution record.
	ToolsInvoked []string
}

// RecordTool appends a tool invocation.
func (e *ExecutionContext) RecordTool(name string) {
	e.ToolsInvoked = append(e.ToolsInvoked, name)
}

// DeadlineExceeded reports whether the query's wall-clock deadline has
// passed.
func (e *ExecutionContext) DeadlineExceeded() bool {
	return !e.Deadline.IsZero() && time.Now().After(e.Deadline)
}
