package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/offgrid-ops/commandcenter/pkg/config"
)

// victronOverview is the VRM system-overview payload. Battery power is
// positive while discharging, opposite to our normalized convention.
type victronOverview struct {
	SOC            float64 `json:"soc"`
	BatteryPower   float64 `json:"battery_power"`
	BatteryVoltage float64 `json:"battery_voltage"`
	BatteryCurrent float64 `json:"battery_current"`
	PVPower        float64 `json:"pv_power"`
	Consumption    float64 `json:"consumption"`
	GridPower      float64 `json:"grid_power"`
	Timestamp      int64   `json:"timestamp"`
}

// VictronClient polls the Victron VRM API for one installation.
type VictronClient struct {
	baseURL string
	token   string
	siteID  string
	client  *http.Client
}

// NewVictronClient creates a Victron vendor client.
func NewVictronClient(cfg config.VendorConfig) *VictronClient {
	return &VictronClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		siteID:  cfg.PlantID,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *VictronClient) Vendor() Vendor {
	return VendorVictron
}

// Fetch retrieves and normalizes the current system overview.
func (c *VictronClient) Fetch(ctx context.Context) (*Sample, error) {
	endpoint := fmt.Sprintf("%s/v2/installations/%s/system-overview", c.baseURL, url.PathEscape(c.siteID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Authorization", "Token "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("victron fetch failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrVendorRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("victron returned status %d", resp.StatusCode)
	}

	var overview victronOverview
	if err := json.NewDecoder(resp.Body).Decode(&overview); err != nil {
		return nil, fmt.Errorf("victron response malformed: %w", err)
	}

	return normalizeVictron(c.siteID, &overview), nil
}

// normalizeVictron flips the battery sign so positive means charging and
// derives the flow flags VRM does not report directly.
func normalizeVictron(siteID string, o *victronOverview) *Sample {
	battPower := -o.BatteryPower

	ts := time.Now().UTC().Truncate(time.Second)
	if o.Timestamp > 0 {
		ts = time.Unix(o.Timestamp, 0).UTC()
	}

	return &Sample{
		PlantID:        siteID,
		Timestamp:      ts,
		SOC:            o.SOC,
		BatteryPower:   battPower,
		BatteryVoltage: o.BatteryVoltage,
		BatteryCurrent: o.BatteryCurrent,
		PVPower:        o.PVPower,
		LoadPower:      o.Consumption,
		GridPower:      o.GridPower,
		PVToLoad:       o.PVPower > 0 && o.Consumption > 0,
		PVToBattery:    battPower > 0 && o.PVPower > 0,
		BatteryToLoad:  battPower < 0,
		GridToLoad:     o.GridPower > 0,
	}
}
