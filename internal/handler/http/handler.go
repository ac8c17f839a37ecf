package http

import (
	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/metrics"
	"github.com/MKhiriev/autokirk-mcp-server/internal/service"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
)

type Handler struct {
	services *service.Services

	cors         config.CORS
	logFormat    string
	maxBodyBytes int64

	metrics  *metrics.Metrics
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. m may be nil, in which case requests
// are not measured. An unrecognized log label is kept as is and produces
// combined access-log entries.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if !cfg.Log.KnownFormat() {
		logger.Warn().
			Str("log_level", cfg.Log.Level).
			Str("access_log_format", config.LogFormatCombined).
			Msg("unknown log level, using combined access-log fields")
	}
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		cors:         cfg.CORS,
		logFormat:    cfg.Log.Level,
		maxBodyBytes: cfg.HTTP.MaxBodyBytes,
		metrics:      m,
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
