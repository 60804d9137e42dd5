package kb

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler runs smart syncs on a fixed interval. A zero interval disables
// scheduled syncs entirely; manual syncs through the API still work.
type Scheduler struct {
	service  *Service
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a sync scheduler.
func NewScheduler(service *Service, interval time.Duration) *Scheduler {
	return &Scheduler{
		service:  service,
		interval: interval,
	}
}

// Start launches the background sync loop.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	if s.interval <= 0 {
		slog.Info("Scheduled KB sync disabled")
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("KB sync scheduler started", "interval", s.interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("KB sync scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Drain the stream; scheduled syncs have no interactive consumer.
			for range s.service.Sync(ctx, SyncModeSmart, false) {
			}
		}
	}
}
