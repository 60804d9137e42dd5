// Package api exposes the control plane over REST.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/offgrid-ops/commandcenter/pkg/agent"
	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/conversation"
	"github.com/offgrid-ops/commandcenter/pkg/database"
	"github.com/offgrid-ops/commandcenter/pkg/kb"
	"github.com/offgrid-ops/commandcenter/pkg/services"
	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
)

// Server translates HTTP requests into core calls.
type Server struct {
	cfg           *config.Config
	db            *database.Client
	orchestrator  *agent.Orchestrator
	conversations *conversation.Service
	executions    *services.ExecutionService
	kb            *kb.Service
	telemetry     *telemetry.Service
	pollerHealth  map[telemetry.Vendor]*telemetry.HealthState

	http *http.Server
}

// NewServer creates the API server.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	orchestrator *agent.Orchestrator,
	conversations *conversation.Service,
	executions *services.ExecutionService,
	kbService *kb.Service,
	telemetryService *telemetry.Service,
	pollerHealth map[telemetry.Vendor]*telemetry.HealthState,
) *Server {
	return &Server{
		cfg:           cfg,
		db:            db,
		orchestrator:  orchestrator,
		conversations: conversations,
		executions:    executions,
		kb:            kbService,
		telemetry:     telemetryService,
		pollerHealth:  pollerHealth,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/health", s.Health)

	authed := router.Group("/api", apiKeyAuth(s.cfg.APIKey))
	{
		authed.POST("/ask", s.Ask)

		authed.GET("/conversations", s.ListConversations)
		authed.GET("/conversations/:id", s.GetConversation)
		authed.POST("/conversations/:id/close", s.CloseConversation)

		authed.POST("/kb/sync", s.SyncKB)
		authed.GET("/kb/search", s.SearchKB)
		authed.GET("/kb/stats", s.KBStats)
		authed.GET("/kb/documents", s.ListKBDocuments)

		authed.GET("/telemetry/:vendor/latest", s.LatestTelemetry)
		authed.GET("/telemetry/:vendor/history", s.TelemetryHistory)

		authed.GET("/executions", s.ListExecutions)
		authed.GET("/agents/health", s.AgentsHealth)
	}

	return router
}

// listenAddr builds the bind address from the configured port.
func (s *Server) listenAddr() string {
	return net.JoinHostPort("", s.cfg.HTTPPort)
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.listenAddr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("API server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
