package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/offgrid-ops/commandcenter/pkg/services"
)

func TestWriteServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", services.NewValidationError("query", "required"), http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: bad vendor", services.ErrInvalidInput), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"rate limited", fmt.Errorf("%w: throttled", services.ErrRateLimited), http.StatusTooManyRequests},
		{"unavailable", services.ErrUnavailable, http.StatusServiceUnavailable},
		{"upstream", fmt.Errorf("%w: provider 500", services.ErrUpstream), http.StatusBadGateway},
		{"deadline", services.ErrDeadline, http.StatusGatewayTimeout},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			writeServiceError(c, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRateLimitedSetsRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	writeServiceError(c, services.ErrRateLimited)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}
