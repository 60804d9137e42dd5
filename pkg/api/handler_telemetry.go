package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/offgrid-ops/commandcenter/pkg/telemetry"
)

func vendorParam(c *gin.Context) (telemetry.Vendor, bool) {
	switch v := telemetry.Vendor(c.Param("vendor")); v {
	case telemetry.VendorSolArk, telemetry.VendorVictron:
		return v, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor must be solark or victron"})
		return "", false
	}
}

// LatestTelemetry handles GET /api/telemetry/:vendor/latest.
func (s *Server) LatestTelemetry(c *gin.Context) {
	vendor, ok := vendorParam(c)
	if !ok {
		return
	}

	sample, err := s.telemetry.Latest(c.Request.Context(), vendor)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	// No samples yet is a valid state, not an error.
	c.JSON(http.StatusOK, gin.H{"vendor": vendor, "sample": sample})
}

// TelemetryHistory handles GET /api/telemetry/:vendor/history.
func (s *Server) TelemetryHistory(c *gin.Context) {
	vendor, ok := vendorParam(c)
	if !ok {
		return
	}
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "24"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "1000"))

	samples, err := s.telemetry.History(c.Request.Context(), vendor, hours, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vendor":  vendor,
		"hours":   hours,
		"samples": samples,
	})
}
