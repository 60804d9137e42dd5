package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
)

func solarkSample(ts time.Time, soc float64) *telemetry.Sample {
	return &telemetry.Sample{
		PlantID:        "plant-1",
		Timestamp:      ts,
		SOC:            soc,
		BatteryPower:   1200,
		BatteryVoltage: 52.4,
		BatteryCurrent: 22.9,
		PVPower:        3400,
		LoadPower:      900,
		PVToBattery:    true,
		PVToLoad:       true,
	}
}

func TestTelemetryInsertIdempotentOnTimestamp(t *testing.T) {
	client := NewTestClient(t)
	svc := telemetry.NewService(client)
	ctx := context.Background()

	ts := time.Now().UTC().Truncate(time.Second)
	sample := solarkSample(ts, 80)

	require.NoError(t, svc.Insert(ctx, telemetry.VendorSolArk, sample))
	// Duplicate timestamp is silently dropped, even with different values.
	dup := solarkSample(ts, 99)
	require.NoError(t, svc.Insert(ctx, telemetry.VendorSolArk, dup))

	history, err := svc.History(ctx, telemetry.VendorSolArk, 1, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 80, history[0].SOC, 0.01)
}

func TestTelemetryHistoryAscendingAndLatest(t *testing.T) {
	client := NewTestClient(t)
	svc := telemetry.NewService(client)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	// Insert out of order; reads must come back ascending.
	for _, offset := range []time.Duration{-10 * time.Minute, -30 * time.Minute, -20 * time.Minute} {
		require.NoError(t, svc.Insert(ctx, telemetry.VendorVictron, solarkSample(base.Add(offset), 70)))
	}

	history, err := svc.History(ctx, telemetry.VendorVictron, 1, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i].Timestamp.After(history[i-1].Timestamp))
	}

	latest, err := svc.Latest(ctx, telemetry.VendorVictron)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, base.Add(-10*time.Minute).Unix(), latest.Timestamp.Unix())
}

func TestTelemetryLatestEmptyTable(t *testing.T) {
	client := NewTestClient(t)
	svc := telemetry.NewService(client)

	latest, err := svc.Latest(context.Background(), telemetry.VendorSolArk)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestTelemetryStats(t *testing.T) {
	client := NewTestClient(t)
	svc := telemetry.NewService(client)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, soc := range []float64{60, 70, 80} {
		require.NoError(t, svc.Insert(ctx, telemetry.VendorSolArk, solarkSample(base.Add(-time.Duration(i)*time.Minute), soc)))
	}

	stats, err := svc.Stats(ctx, telemetry.VendorSolArk, 24)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Samples)
	assert.InDelta(t, 60, stats.SOCMin, 0.01)
	assert.InDelta(t, 80, stats.SOCMax, 0.01)
	assert.InDelta(t, 70, stats.SOCAvg, 0.01)
	assert.InDelta(t, 3400, stats.PVPowerAvg, 0.01)
}

func TestTelemetryUnknownVendorRejected(t *testing.T) {
	client := NewTestClient(t)
	svc := telemetry.NewService(client)

	_, err := svc.Latest(context.Background(), telemetry.Vendor("fronius"))
	assert.Error(t, err)
}
