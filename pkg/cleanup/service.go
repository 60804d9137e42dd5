// Package cleanup enforces conversation retention.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/offgrid-ops/commandcenter/pkg/config"
	"github.com/offgrid-ops/commandcenter/pkg/conversation"
)

// Service periodically closes conversations that have been idle past the
// configured window. Closing is idempotent and safe to run from multiple
// replicas.
type Service struct {
	config        config.RetentionConfig
	conversations *conversation.Service

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, conversations *conversation.Service) *Service {
	return &Service{
		config:        cfg,
		conversations: conversations,
	}
}

// Start launches the background sweep loop. A zero idle window disables the
// service entirely.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	if s.config.ConversationIdle <= 0 {
		slog.Info("Conversation retention disabled")
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"conversation_idle", s.config.ConversationIdle,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	count, err := s.conversations.CloseIdle(ctx, s.config.ConversationIdle)
	if err != nil {
		slog.Error("Retention sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Closed idle conversations", "count", count)
	}
}
