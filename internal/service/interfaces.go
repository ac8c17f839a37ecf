package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/autokirk-mcp-server/models"
)

// AppInfoService builds the deployment status and metadata payloads.
type AppInfoService interface {
	// Status describes the running deployment and its resolved settings.
	Status(ctx context.Context) models.StatusResponse
	// Info returns static service metadata stamped with the current time.
	Info(ctx context.Context) models.InfoResponse
}

// HealthService answers uptime checks.
type HealthService interface {
	Health(ctx context.Context) models.HealthResponse
}

// PingService is the MCP ping placeholder. It echoes the request body and
// performs no protocol work.
type PingService interface {
	Ping(ctx context.Context, body json.RawMessage) models.PingResponse
}
