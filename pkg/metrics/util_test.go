package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestPrometheusHandler_ServesRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(defaultMetricPath, prometheusHandler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, defaultMetricPath, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Body.String())
}

func TestComputeApproximateRequestSize(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("X-Trace-Id", "abc123")

	size := computeApproximateRequestSize(req)
	require.Greater(t, size, len("/orders")+len(http.MethodGet))
}
