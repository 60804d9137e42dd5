// Package telemetry polls the inverter vendors, normalizes their samples,
// and serves latest/history/stats reads.
package telemetry

import (
	"sync"
	"time"
)

// HourlyLimiter is a token bucket that refills fully at each clock-hour
// boundary. A remote 429 empties it immediately so the poller sleeps out
// the rest of the hour.
type HourlyLimiter struct {
	mu          sync.Mutex
	max         int
	remaining   int
	windowStart time.Time

	now func() time.Time // test hook
}

// NewHourlyLimiter creates a limiter allowing max requests per clock hour.
func NewHourlyLimiter(max int) *HourlyLimiter {
	l := &HourlyLimiter{max: max, now: time.Now}
	l.windowStart = l.now().Truncate(time.Hour)
	l.remaining = max
	return l
}

// Acquire takes one token. It returns false when the hour's budget is
// spent.
func (l *HourlyLimiter) Acquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked()
	if l.remaining <= 0 {
		return false
	}
	l.remaining--
	return true
}

// Exhaust zeroes the remaining budget for this hour, reconciling the local
// bucket with a remote 429.
func (l *HourlyLimiter) Exhaust() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked()
	l.remaining = 0
}

// Used reports how many requests this hour have consumed tokens.
func (l *HourlyLimiter) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked()
	return l.max - l.remaining
}

// Max returns the bucket size.
func (l *HourlyLimiter) Max() int {
	return l.max
}

// NextRefill returns the upcoming hour boundary.
func (l *HourlyLimiter) NextRefill() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.windowStart.Add(time.Hour)
}

func (l *HourlyLimiter) refillLocked() {
	window := l.now().Truncate(time.Hour)
	if window.After(l.windowStart) {
		l.windowStart = window
		l.remaining = l.max
	}
}
