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

// solarkFlow is the vendor's energy-flow payload. battPower is unsigned;
// the toBat flag carries the direction.
type solarkFlow struct {
	SOC          float64 `json:"soc"`
	BattPower    float64 `json:"battPower"`
	BattVoltage  float64 `json:"vbat"`
	BattCurrent  float64 `json:"ibat"`
	PVPower      float64 `json:"pvPower"`
	LoadPower    float64 `json:"loadOrEpsPower"`
	GridPower    float64 `json:"gridOrMeterPower"`
	ToBat        bool    `json:"toBat"`
	PVToLoad     bool    `json:"pvTo"`
	BatToLoad    bool    `json:"batTo"`
	GridToLoad   bool    `json:"gridTo"`
	UpdateMillis int64   `json:"updateAt"`
}

// SolArkClient polls the SolArk cloud API for one plant.
type SolArkClient struct {
	baseURL string
	token   string
	plantID string
	client  *http.Client
}

// NewSolArkClient creates a SolArk vendor client.
func NewSolArkClient(cfg config.VendorConfig) *SolArkClient {
	return &SolArkClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		plantID: cfg.PlantID,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *SolArkClient) Vendor() Vendor {
	return VendorSolArk
}

// Fetch retrieves and normalizes the current energy flow.
func (c *SolArkClient) Fetch(ctx context.Context) (*Sample, error) {
	endpoint := fmt.Sprintf("%s/api/v1/plant/energy/%s/flow", c.baseURL, url.PathEscape(c.plantID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("solark fetch failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrVendorRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("solark returned status %d", resp.StatusCode)
	}

	var flow solarkFlow
	if err := json.NewDecoder(resp.Body).Decode(&flow); err != nil {
		return nil, fmt.Errorf("solark response malformed: %w", err)
	}

	return normalizeSolArk(c.plantID, &flow), nil
}

// normalizeSolArk converts the vendor payload to the shared sample shape.
// SolArk reports battery power as a magnitude; toBat gives direction, and
// the normalized sign is positive while charging.
func normalizeSolArk(plantID string, flow *solarkFlow) *Sample {
	battPower := flow.BattPower
	if !flow.ToBat {
		battPower = -battPower
	}

	ts := time.Now().UTC().Truncate(time.Second)
	if flow.UpdateMillis > 0 {
		ts = time.UnixMilli(flow.UpdateMillis).UTC()
	}

	return &Sample{
		PlantID:        plantID,
		Timestamp:      ts,
		SOC:            flow.SOC,
		BatteryPower:   battPower,
		BatteryVoltage: flow.BattVoltage,
		BatteryCurrent: flow.BattCurrent,
		PVPower:        flow.PVPower,
		LoadPower:      flow.LoadPower,
		GridPower:      flow.GridPower,
		PVToLoad:       flow.PVToLoad,
		PVToBattery:    flow.ToBat,
		BatteryToLoad:  flow.BatToLoad,
		GridToLoad:     flow.GridToLoad,
	}
}
