package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHourlyLimiterBudget(t *testing.T) {
	l := NewHourlyLimiter(3)

	assert.True(t, l.Acquire())
	assert.True(t, l.Acquire())
	assert.True(t, l.Acquire())
	assert.False(t, l.Acquire())
	assert.Equal(t, 3, l.Used())
}

func TestHourlyLimiterRefillsAtHourBoundary(t *testing.T) {
	current := time.Date(2026, 8, 24, 10, 59, 0, 0, time.UTC)
	l := NewHourlyLimiter(2)
	l.now = func() time.Time { return current }
	l.windowStart = current.Truncate(time.Hour)

	assert.True(t, l.Acquire())
	assert.True(t, l.Acquire())
	assert.False(t, l.Acquire())

	current = current.Add(2 * time.Minute) // crosses 11:00

	assert.True(t, l.Acquire())
	assert.Equal(t, 1, l.Used())
}

func TestHourlyLimiterExhaust(t *testing.T) {
	current := time.Date(2026, 8, 24, 10, 5, 0, 0, time.UTC)
	l := NewHourlyLimiter(10)
	l.now = func() time.Time { return current }
	l.windowStart = current.Truncate(time.Hour)

	assert.True(t, l.Acquire())
	l.Exhaust()
	assert.False(t, l.Acquire())
	assert.Equal(t, 10, l.Used())

	assert.Equal(t, time.Date(2026, 8, 24, 11, 0, 0, 0, time.UTC), l.NextRefill())

	current = current.Add(time.Hour)
	assert.True(t, l.Acquire())
}

func TestHealthStateTransitions(t *testing.T) {
	limiter := NewHourlyLimiter(10)
	h := NewHealthState(VendorSolArk, 3, 10*time.Minute, limiter)

	// Never succeeded: stale but not failing.
	assert.Equal(t, "degraded", h.Snapshot().Status)

	h.recordAttempt()
	h.recordSuccess()
	assert.Equal(t, "healthy", h.Snapshot().Status)
	assert.True(t, h.Healthy())

	h.recordFailure(assertErr("boom"))
	h.recordFailure(assertErr("boom"))
	assert.Equal(t, "healthy", h.Snapshot().Status)

	h.recordFailure(assertErr("boom"))
	snap := h.Snapshot()
	assert.Equal(t, "degraded", snap.Status)
	assert.Equal(t, 3, snap.ConsecutiveFailures)
	assert.Equal(t, "boom", snap.LastError)

	h.recordSuccess()
	assert.Equal(t, "healthy", h.Snapshot().Status)
	assert.Zero(t, h.Snapshot().ConsecutiveFailures)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func TestNormalizeSolArkChargeSign(t *testing.T) {
	charging := normalizeSolArk("plant-1", &solarkFlow{
		SOC: 67, BattPower: 230, ToBat: true, BattVoltage: 53.1,
	})
	assert.Equal(t, 230.0, charging.BatteryPower)
	assert.True(t, charging.PVToBattery)

	discharging := normalizeSolArk("plant-1", &solarkFlow{
		SOC: 61, BattPower: 480, ToBat: false,
	})
	assert.Equal(t, -480.0, discharging.BatteryPower)
}

func TestNormalizeVictronChargeSign(t *testing.T) {
	// VRM reports positive while discharging; normalized sign flips.
	discharging := normalizeVictron("site-9", &victronOverview{
		SOC: 55, BatteryPower: 350, Consumption: 400,
	})
	assert.Equal(t, -350.0, discharging.BatteryPower)
	assert.True(t, discharging.BatteryToLoad)

	charging := normalizeVictron("site-9", &victronOverview{
		SOC: 80, BatteryPower: -500, PVPower: 1500, Consumption: 600,
	})
	assert.Equal(t, 500.0, charging.BatteryPower)
	assert.True(t, charging.PVToBattery)
	assert.False(t, charging.BatteryToLoad)
}

func TestNormalizeTimestampFallback(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	s := normalizeSolArk("p", &solarkFlow{})
	assert.False(t, s.Timestamp.Before(before.Truncate(time.Second)))

	fixed := normalizeSolArk("p", &solarkFlow{UpdateMillis: 1_700_000_000_000})
	assert.Equal(t, time.UnixMilli(1_700_000_000_000).UTC(), fixed.Timestamp)
}
