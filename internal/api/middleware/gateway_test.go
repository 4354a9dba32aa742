package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whoami(c *gin.Context) {
	id, found := GetUserIDFromGateway(c)
	c.JSON(http.StatusOK, gin.H{"user_id": id, "found": found, "email": c.GetString("user_email")})
}

func TestGatewayAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", GatewayAuth(), whoami)

	tests := []struct {
		name    string
		headers map[string]string
		status  int
		body    string
	}{
		{"missing header", nil, http.StatusUnauthorized, "Missing X-User-ID header from gateway"},
		{"forwarded user", map[string]string{"X-User-ID": "42", "X-User-Email": "a@b.c"}, http.StatusOK, `"user_id":"42"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestNoAuthAndMissingUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/anon", NoAuth(), whoami)
	router.GET("/bare", whoami)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/anon", nil))
	assert.Contains(t, w.Body.String(), `"found":true`)
	assert.Contains(t, w.Body.String(), `"user_id":"anonymous"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bare", nil))
	assert.Contains(t, w.Body.String(), `"found":false`)
	assert.Contains(t, w.Body.String(), `"user_id":"anonymous"`)
}

func TestRequestTrackingSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoverWithSentry(), RequestTracking(nil, false))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestTrackingPrometheusToggle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		prometheus bool
		route      string
		added      int
	}{
		{"disabled", false, "/quiet", 0},
		{"enabled", true, "/counted", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestTracking(nil, tt.prometheus))
			router.GET(tt.route, func(c *gin.Context) { c.Status(http.StatusOK) })

			before, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "counterpoint_http_requests_total")
			require.NoError(t, err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.route, nil))
			require.Equal(t, http.StatusOK, w.Code)

			after, err := testutil.GatherAndCount(prometheus.DefaultGatherer, "counterpoint_http_requests_total")
			require.NoError(t, err)
			assert.Equal(t, tt.added, after-before)
		})
	}
}
