package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/offgrid-ops/commandcenter/pkg/agent"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

// Ask handles POST /api/ask.
func (s *Server) Ask(c *gin.Context) {
	var req agent.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := s.admit(c.Request.Context()); err != nil {
		writeServiceError(c, err)
		return
	}

	result, err := s.orchestrator.Ask(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// admit refuses new queries when the connection pool stays saturated past
// the configured wait. A query that cannot draw a connection would burn its
// whole deadline queueing, so shed it early instead.
func (s *Server) admit(ctx context.Context) error {
	wait := s.cfg.Query.PoolExhaustedAfter
	if wait <= 0 {
		return nil
	}
	admitCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	conn, err := s.db.DB().Conn(admitCtx)
	if err != nil {
		if admitCtx.Err() != nil {
			return fmt.Errorf("%w: connection pool exhausted", services.ErrUnavailable)
		}
		return fmt.Errorf("%w: %v", services.ErrUnavailable, err)
	}
	return conn.Close()
}
