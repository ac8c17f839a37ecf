package service

import (
	"context"
	"runtime"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
	"github.com/MKhiriev/autokirk-mcp-server/models"
)

const statusMessage = "Deployment successful. Extend this server with MCP-compatible routes and Autokirk Engine integrations."

type appInfoService struct {
	port     int
	logLevel string
	now      func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(serverCfg config.Server, logCfg config.Log, now func() time.Time, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		port:     serverCfg.Port,
		logLevel: logCfg.Level,
		now:      now,
		logger:   logger,
	}
}

func (s *appInfoService) Status(ctx context.Context) models.StatusResponse {
	return models.StatusResponse{
		Status:  "ok",
		Service: ServiceName,
		Message: statusMessage,
		Env: models.RuntimeEnv{
			Node:     runtime.Version(),
			Port:     s.port,
			LogLevel: s.logLevel,
		},
	}
}

func (s *appInfoService) Info(ctx context.Context) models.InfoResponse {
	return models.InfoResponse{
		Name:    AppName,
		Version: AppVersion,
		Time:    utils.FormatISOTime(s.now()),
	}
}
