package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
)

func TestStatusToolNames(t *testing.T) {
	reg := NewRegistry(StatusTools(&Deps{})...)
	assert.Equal(t, []string{"latest_sample", "history", "stats"}, reg.Names())
}

func TestParseVendor(t *testing.T) {
	tests := []struct {
		raw      string
		expected telemetry.Vendor
		wantErr  bool
	}{
		{"solark", telemetry.VendorSolArk, false},
		{"Victron", telemetry.VendorVictron, false},
		{"", telemetry.VendorSolArk, false},
		{"fronius", "", true},
	}

	for _, tt := range tests {
		vendor, err := parseVendor(tt.raw)
		if tt.wantErr {
			require.Error(t, err, "raw %q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.expected, vendor)
	}
}
