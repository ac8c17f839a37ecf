package grpc

import (
	"context"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. The reported status
// mirrors the HTTP /health route: SERVING while the health service reports
// healthy, NOT_SERVING otherwise and after Shutdown.
type Handler struct {
	// services provides the health check that drives the serving status.
	services *service.Services

	// health is the status registry answering Check and Watch calls.
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. No status is published until
// [Handler.Register] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s and publishes the initial
// status.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	h.Refresh(context.Background())
}

// Refresh re-reads the health service and publishes the result for both the
// overall server ("") and the named service.
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services.HealthService.Health(ctx).Status == service.StatusHealthy {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(service.AppName, status)

	h.logger.Debug().Str("status", status.String()).Msg("gRPC health status published")
}

// Shutdown switches every service to NOT_SERVING and ignores later updates,
// so clients see the drain before the listener closes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
