package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/offgrid-ops/commandcenter/pkg/database"
	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
)

// Health handles GET /health. It is intentionally outside API-key auth so
// load balancers can probe it.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := database.Health(ctx, s.db.DB())

	pollers := make(map[telemetry.Vendor]telemetry.Snapshot, len(s.pollerHealth))
	for vendor, state := range s.pollerHealth {
		pollers[vendor] = state.Snapshot()
	}

	body := gin.H{
		"api":          "ok",
		"db_connected": dbErr == nil,
		"database":     dbHealth,
		"pollers":      pollers,
	}

	if dbErr != nil {
		body["status"] = "unhealthy"
		body["error"] = dbErr.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	body["status"] = "healthy"
	c.JSON(http.StatusOK, body)
}

// AgentsHealth handles GET /api/agents/health: poller health snapshots
// plus overall status for operators.
func (s *Server) AgentsHealth(c *gin.Context) {
	overall := "healthy"
	perAgent := make([]telemetry.Snapshot, 0, len(s.pollerHealth))
	for _, state := range s.pollerHealth {
		snap := state.Snapshot()
		perAgent = append(perAgent, snap)
		switch snap.Status {
		case "unhealthy":
			overall = "unhealthy"
		case "degraded":
			if overall == "healthy" {
				overall = "degraded"
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"overall":   overall,
		"per_agent": perAgent,
	})
}
