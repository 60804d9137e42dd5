package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
)

// Planning engines are deterministic computations over recorded
// telemetry. The planner specialist narrates their output; it never
// invents the numbers itself.

const (
	defaultSOCFloor   = 20.0
	defaultMinerWatts = 800.0
	// batteryCapacityWh approximates usable pack capacity for rate
	// projections when the installation does not report it.
	batteryCapacityWh = 15000.0
)

type hourlyAverage struct {
	Hour    int     `json:"hour"`
	Samples int     `json:"samples"`
	PVAvg   float64 `json:"pv_power_avg"`
	LoadAvg float64 `json:"load_power_avg"`
	Surplus float64 `json:"surplus_avg"`
}

// hourlyAverages buckets history by clock hour (UTC) and averages PV and
// load per bucket.
func hourlyAverages(samples []*telemetry.Sample) []hourlyAverage {
	var pvSum, loadSum [24]float64
	var count [24]int
	for _, s := range samples {
		h := s.Timestamp.UTC().Hour()
		pvSum[h] += s.PVPower
		loadSum[h] += s.LoadPower
		count[h]++
	}

	out := make([]hourlyAverage, 0, 24)
	for h := 0; h < 24; h++ {
		if count[h] == 0 {
			continue
		}
		pv := pvSum[h] / float64(count[h])
		load := loadSum[h] / float64(count[h])
		out = append(out, hourlyAverage{
			Hour:    h,
			Samples: count[h],
			PVAvg:   math.Round(pv),
			LoadAvg: math.Round(load),
			Surplus: math.Round(pv - load),
		})
	}
	return out
}

type batteryPlan struct {
	SOC             float64 `json:"soc"`
	BatteryPower    float64 `json:"battery_power"`
	Trend           string  `json:"trend"`
	HoursToFull     float64 `json:"hours_to_full,omitempty"`
	HoursToFloor    float64 `json:"hours_to_floor,omitempty"`
	SOCFloor        float64 `json:"soc_floor"`
	Recommendation  string  `json:"recommendation"`
	SampleTimestamp string  `json:"sample_timestamp"`
}

// computeBatteryPlan projects the SOC trajectory at the current net
// battery rate against a capacity estimate.
func computeBatteryPlan(latest *telemetry.Sample, floor float64) *batteryPlan {
	plan := &batteryPlan{
		SOC:             latest.SOC,
		BatteryPower:    latest.BatteryPower,
		SOCFloor:        floor,
		SampleTimestamp: latest.Timestamp.UTC().Format(time.RFC3339),
	}

	// Percent of pack moved per hour at the current rate.
	ratePctPerHour := latest.BatteryPower / batteryCapacityWh * 100

	switch {
	case ratePctPerHour > 0.1:
		plan.Trend = "charging"
		plan.HoursToFull = round1((100 - latest.SOC) / ratePctPerHour)
		plan.Recommendation = fmt.Sprintf(
			"Battery is charging at %.0f W; roughly %.1f hours to full at the current rate. Surplus loads can run once SOC clears %.0f%%.",
			latest.BatteryPower, plan.HoursToFull, math.Min(latest.SOC+10, 95))
	case ratePctPerHour < -0.1:
		plan.Trend = "discharging"
		plan.HoursToFloor = round1((latest.SOC - floor) / -ratePctPerHour)
		plan.Recommendation = fmt.Sprintf(
			"Battery is discharging at %.0f W; roughly %.1f hours until the %.0f%% floor at the current rate. Shed deferrable loads if that lands before the next solar window.",
			-latest.BatteryPower, plan.HoursToFloor, floor)
	default:
		plan.Trend = "idle"
		plan.Recommendation = "Battery is holding steady; no action needed."
	}
	return plan
}

type minerWindow struct {
	StartHour int     `json:"start_hour"`
	EndHour   int     `json:"end_hour"`
	Surplus   float64 `json:"surplus_avg"`
}

type minerPlan struct {
	MinerWatts     float64       `json:"miner_watts"`
	SOCFloor       float64       `json:"soc_floor"`
	CurrentSOC     float64       `json:"current_soc"`
	RunNow         bool          `json:"run_now"`
	Windows        []minerWindow `json:"windows"`
	Recommendation string        `json:"recommendation"`
}

// computeMinerPlan finds contiguous clock-hour windows whose average PV
// surplus covers the miner draw, gated on the SOC floor.
func computeMinerPlan(latest *telemetry.Sample, hourly []hourlyAverage, watts, floor float64) *minerPlan {
	plan := &minerPlan{
		MinerWatts: watts,
		SOCFloor:   floor,
		CurrentSOC: latest.SOC,
	}

	// Surplus per clock hour, indexed 0..23; hours without data stay 0.
	var surplus [24]float64
	for _, h := range hourly {
		surplus[h.Hour] = h.Surplus
	}

	for start := 0; start < 24; {
		if surplus[start] < watts {
			start++
			continue
		}
		end := start
		var sum float64
		for end < 24 && surplus[end] >= watts {
			sum += surplus[end]
			end++
		}
		plan.Windows = append(plan.Windows, minerWindow{
			StartHour: start,
			EndHour:   end,
			Surplus:   math.Round(sum / float64(end-start)),
		})
		start = end
	}

	nowHour := time.Now().UTC().Hour()
	aboveFloor := latest.SOC > floor
	for _, w := range plan.Windows {
		if nowHour >= w.StartHour && nowHour < w.EndHour {
			plan.RunNow = aboveFloor
		}
	}

	switch {
	case !aboveFloor:
		plan.Recommendation = fmt.Sprintf("SOC %.0f%% is at or below the %.0f%% floor; keep the miner off until the battery recovers.", latest.SOC, floor)
	case len(plan.Windows) == 0:
		plan.Recommendation = fmt.Sprintf("No hour in the last day averaged a %.0f W PV surplus; run the miner only on deliberate battery draw-down.", watts)
	default:
		parts := make([]string, len(plan.Windows))
		for i, w := range plan.Windows {
			parts[i] = fmt.Sprintf("%02d:00-%02d:00 UTC (avg surplus %.0f W)", w.StartHour, w.EndHour, w.Surplus)
		}
		plan.Recommendation = "Run the miner during: " + strings.Join(parts, ", ") + "."
	}
	return plan
}

type energyPlan struct {
	WindowHours    int             `json:"window_hours"`
	CurrentSOC     float64         `json:"current_soc"`
	Hourly         []hourlyAverage `json:"hourly"`
	SurplusHours   []int           `json:"surplus_hours"`
	DeficitHours   []int           `json:"deficit_hours"`
	Recommendation string          `json:"recommendation"`
}

func computeEnergyPlan(latest *telemetry.Sample, hourly []hourlyAverage) *energyPlan {
	plan := &energyPlan{
		WindowHours: 24,
		CurrentSOC:  latest.SOC,
		Hourly:      hourly,
	}
	for _, h := range hourly {
		if h.Surplus > 0 {
			plan.SurplusHours = append(plan.SurplusHours, h.Hour)
		} else {
			plan.DeficitHours = append(plan.DeficitHours, h.Hour)
		}
	}
	plan.Recommendation = fmt.Sprintf(
		"Schedule deferrable loads into the %d surplus hours and hold the battery through the %d deficit hours; current SOC is %.0f%%.",
		len(plan.SurplusHours), len(plan.DeficitHours), latest.SOC)
	return plan
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PlannerTools builds the deterministic planning tools.
func PlannerTools(deps *Deps) []Tool {
	loadLatest := func(ctx context.Context, rawVendor string) (telemetry.Vendor, *telemetry.Sample, error) {
		vendor, err := parseVendor(rawVendor)
		if err != nil {
			return "", nil, err
		}
		latest, err := deps.Telemetry.Latest(ctx, vendor)
		if err != nil {
			return "", nil, err
		}
		if latest == nil {
			return "", nil, fmt.Errorf("no telemetry recorded yet for %s", vendor)
		}
		return vendor, latest, nil
	}

	return []Tool{
		{
			Name:        "battery_plan",
			Description: "Project the battery SOC trajectory at the current charge/discharge rate: hours to full or hours to the SOC floor, with a recommendation.",
			Parameters: objectSchema(map[string]any{
				"vendor": vendorProperty,
				"soc_floor": map[string]any{
					"type":        "number",
					"description": "SOC percentage to protect. Defaults to 20.",
				},
			}),
			Handler: func(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
				var in struct {
					Vendor   string  `json:"vendor"`
					SOCFloor float64 `json:"soc_floor"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", fmt.Errorf("invalid arguments: %v", err)
				}
				if in.SOCFloor <= 0 || in.SOCFloor >= 100 {
					in.SOCFloor = defaultSOCFloor
				}

				_, latest, err := loadLatest(ctx, in.Vendor)
				if err != nil {
					return "", err
				}

				payload, err := json.Marshal(computeBatteryPlan(latest, in.SOCFloor))
				if err != nil {
					return "", err
				}
				return string(payload) + staleNote(latest.Timestamp, deps.StaleWindow), nil
			},
		},
		{
			Name:        "miner_plan",
			Description: "Find the clock-hour windows where average PV surplus covers the miner's power draw, gated on a SOC floor.",
			Parameters: objectSchema(map[string]any{
				"vendor": vendorProperty,
				"miner_watts": map[string]any{
					"type":        "number",
					"description": "Miner power draw in watts. Defaults to 800.",
				},
				"soc_floor": map[string]any{
					"type":        "number",
					"description": "SOC percentage below which the miner stays off. Defaults to 20.",
				},
			}),
			Handler: func(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
				var in struct {
					Vendor     string  `json:"vendor"`
					MinerWatts float64 `json:"miner_watts"`
					SOCFloor   float64 `json:"soc_floor"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", fmt.Errorf("invalid arguments: %v", err)
				}
				if in.MinerWatts <= 0 {
					in.MinerWatts = defaultMinerWatts
				}
				if in.SOCFloor <= 0 || in.SOCFloor >= 100 {
					in.SOCFloor = defaultSOCFloor
				}

				vendor, latest, err := loadLatest(ctx, in.Vendor)
				if err != nil {
					return "", err
				}
				history, err := deps.Telemetry.History(ctx, vendor, 24, 0)
				if err != nil {
					return "", err
				}

				plan := computeMinerPlan(latest, hourlyAverages(history), in.MinerWatts, in.SOCFloor)
				payload, err := json.Marshal(plan)
				if err != nil {
					return "", err
				}
				return string(payload), nil
			},
		},
		{
			Name:        "energy_plan",
			Description: "Build a 24-hour energy plan from recorded telemetry: per-clock-hour PV and load averages, surplus and deficit hours.",
			Parameters: objectSchema(map[string]any{
				"vendor": vendorProperty,
			}),
			Handler: func(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
				var in struct {
					Vendor string `json:"vendor"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", fmt.Errorf("invalid arguments: %v", err)
				}

				vendor, latest, err := loadLatest(ctx, in.Vendor)
				if err != nil {
					return "", err
				}
				history, err := deps.Telemetry.History(ctx, vendor, 24, 0)
				if err != nil {
					return "", err
				}
				if len(history) == 0 {
					return fmt.Sprintf("No telemetry recorded for %s in the last 24 hours.", vendor), nil
				}

				payload, err := json.Marshal(computeEnergyPlan(latest, hourlyAverages(history)))
				if err != nil {
					return "", err
				}
				return string(payload), nil
			},
		},
	}
}
