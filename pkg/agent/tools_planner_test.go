package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
)

func sampleAt(hour int, pv, load float64) *telemetry.Sample {
	return &telemetry.Sample{
		Timestamp: time.Date(2026, 8, 24, hour, 30, 0, 0, time.UTC),
		PVPower:   pv,
		LoadPower: load,
	}
}

func TestHourlyAverages(t *testing.T) {
	samples := []*telemetry.Sample{
		sampleAt(10, 3000, 900),
		sampleAt(10, 3400, 1100),
		sampleAt(22, 0, 600),
	}

	hourly := hourlyAverages(samples)
	require.Len(t, hourly, 2)

	assert.Equal(t, 10, hourly[0].Hour)
	assert.Equal(t, 2, hourly[0].Samples)
	assert.InDelta(t, 3200, hourly[0].PVAvg, 0.5)
	assert.InDelta(t, 1000, hourly[0].LoadAvg, 0.5)
	assert.InDelta(t, 2200, hourly[0].Surplus, 0.5)

	assert.Equal(t, 22, hourly[1].Hour)
	assert.InDelta(t, -600, hourly[1].Surplus, 0.5)
}

func TestComputeBatteryPlanCharging(t *testing.T) {
	latest := &telemetry.Sample{
		Timestamp:    time.Now(),
		SOC:          70,
		BatteryPower: 1500, // 10% of pack per hour
	}

	plan := computeBatteryPlan(latest, 20)
	assert.Equal(t, "charging", plan.Trend)
	assert.InDelta(t, 3.0, plan.HoursToFull, 0.01)
	assert.Zero(t, plan.HoursToFloor)
	assert.Contains(t, plan.Recommendation, "charging")
}

func TestComputeBatteryPlanDischarging(t *testing.T) {
	latest := &telemetry.Sample{
		Timestamp:    time.Now(),
		SOC:          50,
		BatteryPower: -750, // 5% of pack per hour
	}

	plan := computeBatteryPlan(latest, 20)
	assert.Equal(t, "discharging", plan.Trend)
	assert.InDelta(t, 6.0, plan.HoursToFloor, 0.01)
	assert.Contains(t, plan.Recommendation, "floor")
}

func TestComputeBatteryPlanIdle(t *testing.T) {
	plan := computeBatteryPlan(&telemetry.Sample{Timestamp: time.Now(), SOC: 90}, 20)
	assert.Equal(t, "idle", plan.Trend)
	assert.Zero(t, plan.HoursToFull)
	assert.Zero(t, plan.HoursToFloor)
}

func TestComputeMinerPlanFindsWindows(t *testing.T) {
	var samples []*telemetry.Sample
	// Surplus clears 800 W from 10:00 through 14:00 only.
	for hour := 8; hour < 18; hour++ {
		pv := 500.0
		if hour >= 10 && hour < 15 {
			pv = 2000
		}
		samples = append(samples, sampleAt(hour, pv, 700))
	}
	latest := &telemetry.Sample{Timestamp: time.Now(), SOC: 75}

	plan := computeMinerPlan(latest, hourlyAverages(samples), 800, 20)
	require.Len(t, plan.Windows, 1)
	assert.Equal(t, 10, plan.Windows[0].StartHour)
	assert.Equal(t, 15, plan.Windows[0].EndHour)
	assert.InDelta(t, 1300, plan.Windows[0].Surplus, 0.5)
	assert.Contains(t, plan.Recommendation, "10:00-15:00")
}

func TestComputeMinerPlanRespectsSOCFloor(t *testing.T) {
	samples := []*telemetry.Sample{sampleAt(12, 3000, 500)}
	latest := &telemetry.Sample{Timestamp: time.Now(), SOC: 15}

	plan := computeMinerPlan(latest, hourlyAverages(samples), 800, 20)
	assert.False(t, plan.RunNow)
	assert.Contains(t, plan.Recommendation, "keep the miner off")
}

func TestComputeEnergyPlanSplitsSurplusAndDeficit(t *testing.T) {
	samples := []*telemetry.Sample{
		sampleAt(11, 3000, 800),
		sampleAt(12, 3200, 900),
		sampleAt(23, 0, 400),
	}
	latest := &telemetry.Sample{Timestamp: time.Now(), SOC: 64}

	plan := computeEnergyPlan(latest, hourlyAverages(samples))
	assert.Equal(t, []int{11, 12}, plan.SurplusHours)
	assert.Equal(t, []int{23}, plan.DeficitHours)
	assert.Equal(t, 24, plan.WindowHours)
	assert.InDelta(t, 64, plan.CurrentSOC, 0.01)
}

func TestStaleNote(t *testing.T) {
	window := 10 * time.Minute

	assert.Empty(t, staleNote(time.Now(), window))
	assert.Empty(t, staleNote(time.Now().Add(-time.Hour), 0))

	note := staleNote(time.Now().Add(-30*time.Minute), window)
	assert.Contains(t, note, "minutes stale")
}
