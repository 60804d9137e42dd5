package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/offgrid-ops/commandcenter/pkg/services"
)

// ListExecutions handles GET /api/executions.
func (s *Server) ListExecutions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	execs, err := s.executions.List(c.Request.Context(), services.ListFilter{
		SessionID: c.Query("session_id"),
		AgentRole: c.Query("agent_role"),
		Limit:     limit,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"executions": execs})
}
