package handler

import (
	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/handler/grpc"
	"github.com/MKhiriev/autokirk-mcp-server/internal/handler/http"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/metrics"
	"github.com/MKhiriev/autokirk-mcp-server/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds one handler per enabled transport. The HTTP handler
// exists whenever a port is configured; the gRPC health handler only when
// GRPC_ADDRESS is set. m may be nil.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.Port != 0 {
		handlers.HTTP = http.NewHandler(services, cfg, m, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
