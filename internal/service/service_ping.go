package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
	"github.com/MKhiriev/autokirk-mcp-server/models"
)

const (
	pingType    = "mcp-ping"
	pingMessage = "Autokirk MCP stub endpoint is online. Wire this into your MCP connector when ready."
)

type pingService struct {
	now func() time.Time

	logger *logger.Logger
}

func NewPingService(now func() time.Time, logger *logger.Logger) PingService {
	return &pingService{now: now, logger: logger}
}

// Ping echoes body back. A nil body is reported as JSON null.
func (s *pingService) Ping(ctx context.Context, body json.RawMessage) models.PingResponse {
	logger.FromContext(ctx).Debug().Int("body_size", len(body)).Msg("mcp ping received")

	return models.PingResponse{
		Type:       pingType,
		ReceivedAt: utils.FormatISOTime(s.now()),
		Body:       body,
		Message:    pingMessage,
	}
}
