package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"
)

const (
	pollBackoffBase = 5 * time.Second
	pollBackoffMax  = 5 * time.Minute
)

// Poller is the background worker for one vendor. It is the sole writer of
// that vendor's telemetry table.
type Poller struct {
	client   VendorClient
	store    *Service
	limiter  *HourlyLimiter
	health   *HealthState
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller wires a poller from its parts.
func NewPoller(client VendorClient, store *Service, limiter *HourlyLimiter, health *HealthState, interval time.Duration) *Poller {
	return &Poller{
		client:   client,
		store:    store,
		limiter:  limiter,
		health:   health,
		interval: interval,
		logger:   slog.With("component", "poller", "vendor", client.Vendor()),
	}
}

// Health exposes the poller's health state.
func (p *Poller) Health() *HealthState {
	return p.health
}

// Start launches the poll loop.
func (p *Poller) Start(ctx context.Context) {
	if p.cancel != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})

	go p.run(ctx)

	p.logger.Info("Poller started", "interval", p.interval, "rate_limit_per_hour", p.limiter.Max())
}

// Stop signals the loop to exit and waits for it to finish.
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.logger.Info("Poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	wait := withJitter(p.interval / 10)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		wait = p.pollOnce(ctx)
	}
}

// pollOnce performs one poll attempt and returns the delay before the
// next.
func (p *Poller) pollOnce(ctx context.Context) time.Duration {
	if !p.limiter.Acquire() {
		wait := time.Until(p.limiter.NextRefill())
		p.logger.Warn("Hourly budget spent, sleeping to hour boundary", "wait", wait)
		if wait < time.Second {
			wait = time.Second
		}
		return wait
	}

	p.health.recordAttempt()

	sample, err := p.client.Fetch(ctx)
	if err != nil {
		p.health.recordFailure(err)

		if errors.Is(err, ErrVendorRateLimited) {
			p.limiter.Exhaust()
			wait := time.Until(p.limiter.NextRefill())
			p.logger.Warn("Vendor returned 429, sleeping to hour boundary", "wait", wait)
			if wait < time.Second {
				wait = time.Second
			}
			return wait
		}

		backoff := pollBackoffBase << (p.health.failures() - 1)
		if backoff > pollBackoffMax || backoff <= 0 {
			backoff = pollBackoffMax
		}
		p.logger.Error("Poll failed", "error", err, "consecutive_failures", p.health.failures(), "backoff", backoff)
		return withJitter(backoff)
	}

	if err := p.store.Insert(ctx, p.client.Vendor(), sample); err != nil {
		p.health.recordFailure(err)
		p.logger.Error("Failed to persist sample", "error", err)
		return withJitter(p.interval)
	}

	p.health.recordSuccess()
	p.logger.Debug("Sample persisted", "timestamp", sample.Timestamp, "soc", sample.SOC)
	return withJitter(p.interval)
}

// withJitter adds up to 10% random jitter so replicas and restarts spread
// their load.
func withJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	return d + time.Duration(rand.Int63n(int64(d)/10+1))
}
