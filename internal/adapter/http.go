package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/service"
	"github.com/MKhiriev/autokirk-mcp-server/internal/utils"
	"github.com/MKhiriev/autokirk-mcp-server/models"
)

type httpServiceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServiceAdapter constructs the HTTP implementation of
// [ServiceAdapter]. address may omit the scheme, in which case http is
// assumed. A zero timeout disables the per-request deadline.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServiceAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServiceAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServiceAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse
	if err := h.get(ctx, "/", &status); err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	return status, nil
}

func (h *httpServiceAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	if err := h.get(ctx, "/health", &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if health.Status != service.StatusHealthy {
		return health, fmt.Errorf("%w: status %q", ErrUnhealthy, health.Status)
	}
	return health, nil
}

func (h *httpServiceAdapter) Info(ctx context.Context) (models.InfoResponse, error) {
	var info models.InfoResponse
	if err := h.get(ctx, "/api/info", &info); err != nil {
		return models.InfoResponse{}, fmt.Errorf("info request: %w", err)
	}
	return info, nil
}

func (h *httpServiceAdapter) Ping(ctx context.Context, body json.RawMessage) (models.PingResponse, error) {
	var pong models.PingResponse

	req := h.client.R().
		SetContext(ctx).
		SetResult(&pong)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody([]byte(body))
	}

	resp, err := req.Post("/api/mcp/ping")
	if err != nil {
		return models.PingResponse{}, fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PingResponse{}, fmt.Errorf("ping request: %w", err)
	}

	return pong, nil
}

func (h *httpServiceAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("adapter response")

	return mapHTTPError(resp)
}
