package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
)

func parseVendor(raw string) (telemetry.Vendor, error) {
	switch telemetry.Vendor(strings.ToLower(strings.TrimSpace(raw))) {
	case telemetry.VendorSolArk:
		return telemetry.VendorSolArk, nil
	case telemetry.VendorVictron:
		return telemetry.VendorVictron, nil
	case "":
		return telemetry.VendorSolArk, nil
	default:
		return "", fmt.Errorf("unknown vendor %q (expected solark or victron)", raw)
	}
}

var vendorProperty = map[string]any{
	"type":        "string",
	"enum":        []string{"solark", "victron"},
	"description": "Telemetry source to read. Defaults to solark.",
}

// staleNote annotates readings older than the freshness window so agents
// never present stale numbers as current.
func staleNote(ts time.Time, window time.Duration) string {
	if window <= 0 {
		return ""
	}
	age := time.Since(ts)
	if age <= window {
		return ""
	}
	return fmt.Sprintf("\nWARNING: this data is %d minutes stale (last sample %s).",
		int(age.Minutes()), ts.UTC().Format(time.RFC3339))
}

// StatusTools builds the telemetry read tools shared by the status
// specialist and the planner.
func StatusTools(deps *Deps) []Tool {
	return []Tool{
		{
			Name:        "latest_sample",
			Description: "Get the most recent telemetry reading: state of charge, battery power (positive = charging), PV, load and grid power.",
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
				vendor, err := parseVendor(in.Vendor)
				if err != nil {
					return "", err
				}

				sample, err := deps.Telemetry.Latest(ctx, vendor)
				if err != nil {
					return "", err
				}
				if sample == nil {
					return fmt.Sprintf("No telemetry recorded yet for %s.", vendor), nil
				}

				payload, err := json.Marshal(sample)
				if err != nil {
					return "", err
				}
				return string(payload) + staleNote(sample.Timestamp, deps.StaleWindow), nil
			},
		},
		{
			Name:        "history",
			Description: "Get telemetry samples from the last N hours, oldest first.",
			Parameters: objectSchema(map[string]any{
				"vendor": vendorProperty,
				"hours": map[string]any{
					"type":        "integer",
					"description": "Window size in hours. Defaults to 24.",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum samples to return. Defaults to 1000.",
				},
			}),
			Handler: func(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
				var in struct {
					Vendor string `json:"vendor"`
					Hours  int    `json:"hours"`
					Limit  int    `json:"limit"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", fmt.Errorf("invalid arguments: %v", err)
				}
				vendor, err := parseVendor(in.Vendor)
				if err != nil {
					return "", err
				}

				samples, err := deps.Telemetry.History(ctx, vendor, in.Hours, in.Limit)
				if err != nil {
					return "", err
				}
				if len(samples) == 0 {
					return fmt.Sprintf("No telemetry recorded for %s in that window.", vendor), nil
				}

				payload, err := json.Marshal(samples)
				if err != nil {
					return "", err
				}
				return string(payload), nil
			},
		},
		{
			Name:        "stats",
			Description: "Aggregate the last N hours of telemetry: SOC min/max/avg and average PV, load and battery power.",
			Parameters: objectSchema(map[string]any{
				"vendor": vendorProperty,
				"hours": map[string]any{
					"type":        "integer",
					"description": "Window size in hours. Defaults to 24.",
				},
			}),
			Handler: func(ctx context.Context, _ *ExecutionContext, args json.RawMessage) (string, error) {
				var in struct {
					Vendor string `json:"vendor"`
					Hours  int    `json:"hours"`
				}
				if err := json.Unmarshal(args, &in); err != nil {
					return "", fmt.Errorf("invalid arguments: %v", err)
				}
				vendor, err := parseVendor(in.Vendor)
				if err != nil {
					return "", err
				}

				stats, err := deps.Telemetry.Stats(ctx, vendor, in.Hours)
				if err != nil {
					return "", err
				}

				payload, err := json.Marshal(stats)
				if err != nil {
					return "", err
				}
				return string(payload), nil
			},
		},
	}
}
