package service

import (
	"context"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
	"github.com/MKhiriev/autokirk-mcp-server/models"
)

// StatusHealthy is reported for as long as the process answers requests.
const StatusHealthy = "healthy"

type healthService struct {
	now func() time.Time

	logger *logger.Logger
}

func NewHealthService(now func() time.Time, logger *logger.Logger) HealthService {
	return &healthService{now: now, logger: logger}
}

func (s *healthService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status: StatusHealthy,
		Time:   utils.FormatISOTime(s.now()),
	}
}
