package server

import (
	"net/http"

	"github.com/MKhiriev/autokirk-mcp-server/internal/metrics"
	"github.com/go-chi/chi/v5"
)

const metricsPath = "/metrics"

// metricsMux exposes the registry on the metrics listener only, keeping it
// off the public API port.
func metricsMux(m *metrics.Metrics) http.Handler {
	router := chi.NewRouter()
	router.Method(http.MethodGet, metricsPath, m.Handler())
	return router
}
