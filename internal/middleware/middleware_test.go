package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"umrah-gateway/internal/logger"
)

const testFrontendURL = "https://umrah-tours.example.com"

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(testFrontendURL, logger.NewLogger()))
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		setOrigin   bool
		wantStatus  int
		wantAllowed string
	}{
		{name: "no origin header allowed", setOrigin: false, wantStatus: http.StatusOK},
		{name: "empty origin treated as absent", setOrigin: true, origin: "", wantStatus: http.StatusOK},
		{name: "configured frontend allowed", setOrigin: true, origin: testFrontendURL, wantStatus: http.StatusOK, wantAllowed: testFrontendURL},
		{name: "netlify subdomain allowed", setOrigin: true, origin: "https://umrah-preview-42.netlify.app", wantStatus: http.StatusOK, wantAllowed: "https://umrah-preview-42.netlify.app"},
		{name: "netlify over plain http rejected", setOrigin: true, origin: "http://preview.netlify.app", wantStatus: http.StatusForbidden},
		{name: "netlify lookalike rejected", setOrigin: true, origin: "https://evil.netlify.app.attacker.com", wantStatus: http.StatusForbidden},
		{name: "unknown origin rejected", setOrigin: true, origin: "https://evil.example.com", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSRouter()

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.setOrigin {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantAllowed != "" {
				assert.Equal(t, tt.wantAllowed, rr.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, rr.Body.String(), "CORS not allowed")
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newCORSRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", testFrontendURL)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization, X-Requested-With", rr.Header().Get("Access-Control-Allow-Headers"))
}

func TestRecoveryReturnsJSON500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery(logger.NewLogger()))
	router.GET("/boom", func(c *gin.Context) {
		panic("unexpected")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal server error")
}
