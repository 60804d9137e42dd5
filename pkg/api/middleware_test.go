package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authTestRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(securityHeaders())
	router.GET("/api/ping", apiKeyAuth(apiKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		value      string
		wantStatus int
	}{
		{
			name:       "auth disabled when no key configured",
			configured: "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing key rejected",
			configured: "secret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong key rejected",
			configured: "secret",
			header:     "X-API-Key",
			value:      "nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "matching header accepted",
			configured: "secret",
			header:     "X-API-Key",
			value:      "secret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "matching bearer token accepted",
			configured: "secret",
			header:     "Authorization",
			value:      "Bearer secret",
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := authTestRouter(tc.configured)
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := authTestRouter("")
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
