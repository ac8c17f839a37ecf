package service

import (
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
)

// Fixed service identity reported by the status and info payloads.
const (
	ServiceName = "Autokirk MCP Server"
	AppName     = "autokirk-mcp-server"
	AppVersion  = "1.1.0"
)

type Services struct {
	AppInfoService AppInfoService
	HealthService  HealthService
	PingService    PingService
}

func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AppInfoService: NewAppInfoService(cfg.Server, cfg.Log, time.Now, logger),
		HealthService:  NewHealthService(time.Now, logger),
		PingService:    NewPingService(time.Now, logger),
	}
}
