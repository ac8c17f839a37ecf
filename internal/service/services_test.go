package service

import (
	"context"
	"encoding/json"
	"runtime"
	"testing"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 10, 19, 8, 15, 30, 123_000_000, time.UTC)

func fixedClock() time.Time { return fixedTime }

// ── NewServices ──────────────────────────────────────────────────────────────

func TestNewServices_AllServicesCreated(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server: config.Server{Port: 3000},
		Log:    config.Log{Level: "dev"},
	}

	svcs := NewServices(cfg, logger.Nop())

	require.NotNil(t, svcs)
	assert.NotNil(t, svcs.AppInfoService)
	assert.NotNil(t, svcs.HealthService)
	assert.NotNil(t, svcs.PingService)
}

// ── AppInfoService ───────────────────────────────────────────────────────────

func TestAppInfoService_Status(t *testing.T) {
	svc := NewAppInfoService(config.Server{Port: 8080}, config.Log{Level: "tiny"}, fixedClock, logger.Nop())

	got := svc.Status(context.Background())

	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "Autokirk MCP Server", got.Service)
	assert.NotEmpty(t, got.Message)
	assert.Equal(t, runtime.Version(), got.Env.Node)
	assert.Equal(t, 8080, got.Env.Port)
	assert.Equal(t, "tiny", got.Env.LogLevel)
}

func TestAppInfoService_Info(t *testing.T) {
	svc := NewAppInfoService(config.Server{}, config.Log{}, fixedClock, logger.Nop())

	got := svc.Info(context.Background())

	assert.Equal(t, "autokirk-mcp-server", got.Name)
	assert.Equal(t, "1.1.0", got.Version)
	assert.Equal(t, "2026-10-19T08:15:30.123Z", got.Time)
}

// ── HealthService ────────────────────────────────────────────────────────────

func TestHealthService_Health(t *testing.T) {
	got := NewHealthService(fixedClock, logger.Nop()).Health(context.Background())

	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "2026-10-19T08:15:30.123Z", got.Time)
}

func TestHealthService_TimeIsTakenPerCall(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return fixedTime.Add(time.Duration(calls) * time.Second)
	}
	svc := NewHealthService(clock, logger.Nop())

	first := svc.Health(context.Background())
	second := svc.Health(context.Background())

	assert.Equal(t, 2, calls)
	assert.Less(t, first.Time, second.Time)
}

// ── PingService ──────────────────────────────────────────────────────────────

func TestPingService_Ping(t *testing.T) {
	tests := []struct {
		name     string
		body     json.RawMessage
		wantBody string
	}{
		{name: "object body", body: json.RawMessage(`{"x":1}`), wantBody: `{"x":1}`},
		{name: "array body", body: json.RawMessage(`[1,2]`), wantBody: `[1,2]`},
		{name: "no body", body: nil, wantBody: `null`},
	}

	svc := NewPingService(fixedClock, logger.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Ping(context.Background(), tt.body)

			assert.Equal(t, "mcp-ping", got.Type)
			assert.Equal(t, "2026-10-19T08:15:30.123Z", got.ReceivedAt)
			assert.NotEmpty(t, got.Message)

			encoded, err := json.Marshal(got)
			require.NoError(t, err)

			var decoded map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(encoded, &decoded))
			assert.JSONEq(t, tt.wantBody, string(decoded["body"]))
		})
	}
}
