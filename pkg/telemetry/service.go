package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/offgrid-ops/commandcenter/ent"
	"github.com/offgrid-ops/commandcenter/ent/solarksample"
	"github.com/offgrid-ops/commandcenter/ent/victronsample"
	"github.com/offgrid-ops/commandcenter/pkg/database"
	"github.com/offgrid-ops/commandcenter/pkg/services"
)

// tableForVendor whitelists the raw-SQL table names used by Stats.
var tableForVendor = map[Vendor]string{
	VendorSolArk:  "solark_samples",
	VendorVictron: "victron_samples",
}

// Service reads and writes telemetry samples. Pollers are the sole
// writers; anything may read.
type Service struct {
	db *database.Client
}

// NewService creates a telemetry service.
func NewService(db *database.Client) *Service {
	return &Service{db: db}
}

// Insert persists one sample. Writes are idempotent on the sample
// timestamp: a duplicate is silently dropped.
func (s *Service) Insert(ctx context.Context, vendor Vendor, sample *Sample) error {
	switch vendor {
	case VendorSolArk:
		create := s.db.SolarkSample.Create().
			SetTimestamp(sample.Timestamp).
			SetSoc(sample.SOC).
			SetBatteryPower(sample.BatteryPower).
			SetBatteryVoltage(sample.BatteryVoltage).
			SetBatteryCurrent(sample.BatteryCurrent).
			SetPvPower(sample.PVPower).
			SetLoadPower(sample.LoadPower).
			SetGridPower(sample.GridPower).
			SetPvToLoad(sample.PVToLoad).
			SetPvToBat(sample.PVToBattery).
			SetBatToLoad(sample.BatteryToLoad).
			SetGridToLoad(sample.GridToLoad).
			SetCreatedAt(time.Now())
		if sample.PlantID != "" {
			create = create.SetPlantID(sample.PlantID)
		}
		return create.
			OnConflictColumns(solarksample.FieldTimestamp).
			Ignore().
			Exec(ctx)

	case VendorVictron:
		create := s.db.VictronSample.Create().
			SetTimestamp(sample.Timestamp).
			SetSoc(sample.SOC).
			SetBatteryPower(sample.BatteryPower).
			SetBatteryVoltage(sample.BatteryVoltage).
			SetBatteryCurrent(sample.BatteryCurrent).
			SetPvPower(sample.PVPower).
			SetLoadPower(sample.LoadPower).
			SetGridPower(sample.GridPower).
			SetPvToLoad(sample.PVToLoad).
			SetPvToBat(sample.PVToBattery).
			SetBatToLoad(sample.BatteryToLoad).
			SetGridToLoad(sample.GridToLoad).
			SetCreatedAt(time.Now())
		if sample.PlantID != "" {
			create = create.SetPlantID(sample.PlantID)
		}
		return create.
			OnConflictColumns(victronsample.FieldTimestamp).
			Ignore().
			Exec(ctx)

	default:
		return fmt.Errorf("%w: unknown vendor %q", services.ErrInvalidInput, vendor)
	}
}

// Latest returns the most recent sample for a vendor, or nil when the
// table is empty.
func (s *Service) Latest(ctx context.Context, vendor Vendor) (*Sample, error) {
	switch vendor {
	case VendorSolArk:
		row, err := s.db.SolarkSample.Query().
			Order(ent.Desc(solarksample.FieldTimestamp)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to load latest solark sample: %w", err)
		}
		return solarkToSample(row), nil

	case VendorVictron:
		row, err := s.db.VictronSample.Query().
			Order(ent.Desc(victronsample.FieldTimestamp)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to load latest victron sample: %w", err)
		}
		return victronToSample(row), nil

	default:
		return nil, fmt.Errorf("%w: unknown vendor %q", services.ErrInvalidInput, vendor)
	}
}

// History returns samples within the last hours, ascending by timestamp.
func (s *Service) History(ctx context.Context, vendor Vendor, hours, limit int) ([]*Sample, error) {
	if hours <= 0 {
		hours = 24
	}
	if limit <= 0 || limit > 5000 {
		limit = 1000
	}
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	switch vendor {
	case VendorSolArk:
		rows, err := s.db.SolarkSample.Query().
			Where(solarksample.TimestampGT(since)).
			Order(ent.Asc(solarksample.FieldTimestamp)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load solark history: %w", err)
		}
		out := make([]*Sample, len(rows))
		for i, r := range rows {
			out[i] = solarkToSample(r)
		}
		return out, nil

	case VendorVictron:
		rows, err := s.db.VictronSample.Query().
			Where(victronsample.TimestampGT(since)).
			Order(ent.Asc(victronsample.FieldTimestamp)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load victron history: %w", err)
		}
		out := make([]*Sample, len(rows))
		for i, r := range rows {
			out[i] = victronToSample(r)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: unknown vendor %q", services.ErrInvalidInput, vendor)
	}
}

// VendorStats aggregates a window of samples for the stats tool.
type VendorStats struct {
	Vendor          Vendor  `json:"vendor"`
	Hours           int     `json:"hours"`
	Samples         int     `json:"samples"`
	SOCMin          float64 `json:"soc_min"`
	SOCMax          float64 `json:"soc_max"`
	SOCAvg          float64 `json:"soc_avg"`
	PVPowerAvg      float64 `json:"pv_power_avg"`
	LoadPowerAvg    float64 `json:"load_power_avg"`
	BatteryPowerAvg float64 `json:"battery_power_avg"`
}

// Stats aggregates the last hours of samples with one SQL pass.
func (s *Service) Stats(ctx context.Context, vendor Vendor, hours int) (*VendorStats, error) {
	table, ok := tableForVendor[vendor]
	if !ok {
		return nil, fmt.Errorf("%w: unknown vendor %q", services.ErrInvalidInput, vendor)
	}
	if hours <= 0 {
		hours = 24
	}

	query := fmt.Sprintf(`
		SELECT count(*),
			COALESCE(min(soc), 0), COALESCE(max(soc), 0), COALESCE(avg(soc), 0),
			COALESCE(avg(pv_power), 0), COALESCE(avg(load_power), 0), COALESCE(avg(battery_power), 0)
		FROM %s
		WHERE "timestamp" > $1`, table)

	stats := &VendorStats{Vendor: vendor, Hours: hours}
	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	err := s.db.DB().QueryRowContext(ctx, query, since).Scan(
		&stats.Samples,
		&stats.SOCMin, &stats.SOCMax, &stats.SOCAvg,
		&stats.PVPowerAvg, &stats.LoadPowerAvg, &stats.BatteryPowerAvg)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s stats: %w", vendor, err)
	}

	return stats, nil
}

func solarkToSample(r *ent.SolarkSample) *Sample {
	s := &Sample{
		Timestamp:      r.Timestamp,
		SOC:            r.Soc,
		BatteryPower:   r.BatteryPower,
		BatteryVoltage: r.BatteryVoltage,
		BatteryCurrent: r.BatteryCurrent,
		PVPower:        r.PvPower,
		LoadPower:      r.LoadPower,
		GridPower:      r.GridPower,
		PVToLoad:       r.PvToLoad,
		PVToBattery:    r.PvToBat,
		BatteryToLoad:  r.BatToLoad,
		GridToLoad:     r.GridToLoad,
	}
	if r.PlantID != nil {
		s.PlantID = *r.PlantID
	}
	return s
}

func victronToSample(r *ent.VictronSample) *Sample {
	s := &Sample{
		Timestamp:      r.Timestamp,
		SOC:            r.Soc,
		BatteryPower:   r.BatteryPower,
		BatteryVoltage: r.BatteryVoltage,
		BatteryCurrent: r.BatteryCurrent,
		PVPower:        r.PvPower,
		LoadPower:      r.LoadPower,
		GridPower:      r.GridPower,
		PVToLoad:       r.PvToLoad,
		PVToBattery:    r.PvToBat,
		BatteryToLoad:  r.BatToLoad,
		GridToLoad:     r.GridToLoad,
	}
	if r.PlantID != nil {
		s.PlantID = *r.PlantID
	}
	return s
}
