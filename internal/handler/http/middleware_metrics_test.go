package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/metrics"
	"github.com/MKhiriev/autokirk-mcp-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestWithMetrics_NilMetricsIsPassThrough(t *testing.T) {
	h := newBareHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	h.withMetrics(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestWithMetrics_RecordsRoutePattern(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	cfg := newTestConfig()
	router := NewHandler(service.NewServices(cfg, logger.Nop()), cfg, m, logger.Nop()).Init()

	serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nope", nil))
	serve(router, newJSONRequest(http.MethodPost, "/api/mcp/ping", `{"x":1}`))

	out := scrape(t, m)
	assert.Contains(t, out, `autokirk_http_requests_total{method="GET",route="/health",status="200"} 2`)
	assert.Contains(t, out, `autokirk_http_requests_total{method="POST",route="/api/mcp/ping",status="200"} 1`)
	assert.Contains(t, out, `status="404"`)
	assert.NotContains(t, out, `route="/nope"`)
}

func TestWithMetrics_CustomMethodsShareOneLabel(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	cfg := newTestConfig()
	router := NewHandler(service.NewServices(cfg, logger.Nop()), cfg, m, logger.Nop()).Init()

	for _, method := range []string{"PROPFIND", "PURGE", "X-RANDOM"} {
		rec := serve(router, httptest.NewRequest(method, "/health", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	out := scrape(t, m)
	assert.Contains(t, out, `method="other"`)
	assert.NotContains(t, out, `method="PROPFIND"`)
	assert.NotContains(t, out, `method="X-RANDOM"`)
}
