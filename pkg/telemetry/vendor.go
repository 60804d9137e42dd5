package telemetry

import (
	"context"
	"errors"
	"time"
)

// Vendor identifies one telemetry source.
type Vendor string

const (
	VendorSolArk  Vendor = "solark"
	VendorVictron Vendor = "victron"
)

// ErrVendorRateLimited signals a remote 429; the poller empties its local
// bucket and sleeps to the hour boundary.
var ErrVendorRateLimited = errors.New("vendor rate limited")

// Sample is a normalized telemetry reading. Sign convention: positive
// battery power means charging, for both vendors.
type Sample struct {
	PlantID        string    `json:"plant_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	SOC            float64   `json:"soc"`
	BatteryPower   float64   `json:"battery_power"`
	BatteryVoltage float64   `json:"battery_voltage"`
	BatteryCurrent float64   `json:"battery_current"`
	PVPower        float64   `json:"pv_power"`
	LoadPower      float64   `json:"load_power"`
	GridPower      float64   `json:"grid_power"`
	PVToLoad       bool      `json:"pv_to_load"`
	PVToBattery    bool      `json:"pv_to_bat"`
	BatteryToLoad  bool      `json:"bat_to_load"`
	GridToLoad     bool      `json:"grid_to_load"`
}

// VendorClient fetches the current reading from one vendor API.
type VendorClient interface {
	Vendor() Vendor
	Fetch(ctx context.Context) (*Sample, error)
}
