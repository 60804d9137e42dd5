package telemetry

import (
	"sync"
	"time"
)

// HealthState tracks one poller's liveness. Updated by the poller loop,
// read synchronously by the health endpoints.
type HealthState struct {
	mu                  sync.Mutex
	vendor              Vendor
	lastAttemptAt       time.Time
	lastSuccessAt       time.Time
	consecutiveFailures int
	lastError           string

	maxFailures int
	staleWindow time.Duration
	limiter     *HourlyLimiter
}

// NewHealthState creates health tracking for one vendor.
func NewHealthState(vendor Vendor, maxFailures int, staleWindow time.Duration, limiter *HourlyLimiter) *HealthState {
	return &HealthState{
		vendor:      vendor,
		maxFailures: maxFailures,
		staleWindow: staleWindow,
		limiter:     limiter,
	}
}

func (h *HealthState) recordAttempt() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastAttemptAt = time.Now()
}

func (h *HealthState) recordSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastSuccessAt = time.Now()
	h.consecutiveFailures = 0
	h.lastError = ""
}

func (h *HealthState) recordFailure(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.consecutiveFailures++
	h.lastError = err.Error()
}

func (h *HealthState) failures() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.consecutiveFailures
}

// Snapshot is a point-in-time health view.
type Snapshot struct {
	Vendor              Vendor     `json:"vendor"`
	Status              string     `json:"status"` // healthy, degraded, unhealthy
	LastAttemptAt       *time.Time `json:"last_attempt_at,omitempty"`
	LastSuccessAt       *time.Time `json:"last_success_at,omitempty"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	RequestsThisHour    int        `json:"requests_this_hour"`
	RateLimitMax        int        `json:"rate_limit_max"`
	LastError           string     `json:"last_error,omitempty"`
	SampleAge           string     `json:"sample_age,omitempty"`
}

// Snapshot reports current health. A poller is healthy while failures stay
// under the threshold and the last success is fresh; it is degraded when
// one of the two slips, unhealthy when both do.
func (h *HealthState) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap := Snapshot{
		Vendor:              h.vendor,
		ConsecutiveFailures: h.consecutiveFailures,
		RequestsThisHour:    h.limiter.Used(),
		RateLimitMax:        h.limiter.Max(),
		LastError:           h.lastError,
	}
	if !h.lastAttemptAt.IsZero() {
		t := h.lastAttemptAt
		snap.LastAttemptAt = &t
	}
	if !h.lastSuccessAt.IsZero() {
		t := h.lastSuccessAt
		snap.LastSuccessAt = &t
		snap.SampleAge = time.Since(t).Round(time.Second).String()
	}

	failing := h.consecutiveFailures >= h.maxFailures
	stale := h.lastSuccessAt.IsZero() || time.Since(h.lastSuccessAt) >= h.staleWindow

	switch {
	case !failing && !stale:
		snap.Status = "healthy"
	case failing && stale:
		snap.Status = "unhealthy"
	default:
		snap.Status = "degraded"
	}

	return snap
}

// Healthy reports the strict health predicate.
func (h *HealthState) Healthy() bool {
	return h.Snapshot().Status == "healthy"
}
