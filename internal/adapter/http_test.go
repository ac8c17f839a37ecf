// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	httpHandler "github.com/MKhiriev/autokirk-mcp-server/internal/handler/http"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ServiceAdapter {
	t.Helper()

	a, err := NewHTTPServiceAdapter(serverURL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return a
}

// newLiveServer serves the real router with the given CORS allow-list.
func newLiveServer(t *testing.T, allowedOrigins string) *httptest.Server {
	t.Helper()

	cfg := &config.StructuredConfig{
		Server: config.Server{Port: 3000},
		Log:    config.Log{Level: config.LogFormatCombined},
		CORS:   config.CORS{AllowedOrigins: allowedOrigins},
		HTTP:   config.HTTP{MaxBodyBytes: config.DefaultMaxBodyBytes},
	}
	h := httpHandler.NewHandler(service.NewServices(cfg, logger.Nop()), cfg, nil, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "127.0.0.1:3000", want: "http://127.0.0.1:3000"},
		{raw: "http://localhost:3000/", want: "http://localhost:3000"},
		{raw: " https://api.example.com ", want: "https://api.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServiceAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPServiceAdapter("", time.Second, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, a)
}

// ── Against the real router ─────────────────────────────────────────────────

func TestEndToEnd_Routes(t *testing.T) {
	a := newTestAdapter(t, newLiveServer(t, "").URL)
	ctx := context.Background()

	status, err := a.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, service.ServiceName, status.Service)
	assert.Equal(t, 3000, status.Env.Port)
	assert.Equal(t, config.LogFormatCombined, status.Env.LogLevel)

	health, err := a.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.StatusHealthy, health.Status)

	info, err := a.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, service.AppName, info.Name)
	assert.Equal(t, service.AppVersion, info.Version)
}

func TestEndToEnd_Ping(t *testing.T) {
	a := newTestAdapter(t, newLiveServer(t, "").URL)

	t.Run("object is echoed", func(t *testing.T) {
		pong, err := a.Ping(context.Background(), json.RawMessage(`{"x":1}`))

		require.NoError(t, err)
		assert.Equal(t, "mcp-ping", pong.Type)
		assert.JSONEq(t, `{"x":1}`, string(pong.Body))
	})

	t.Run("duplicate keys collapse", func(t *testing.T) {
		pong, err := a.Ping(context.Background(), json.RawMessage(`{"a":1,"a":2}`))

		require.NoError(t, err)
		assert.Equal(t, `{"a":2}`, string(pong.Body))
	})

	t.Run("no body gives null", func(t *testing.T) {
		pong, err := a.Ping(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "null", string(pong.Body))
	})

	t.Run("malformed body is a server error", func(t *testing.T) {
		_, err := a.Ping(context.Background(), json.RawMessage(`{bad`))

		require.ErrorIs(t, err, ErrInternalServerError)
		assert.Contains(t, err.Error(), "malformed JSON body")
	})
}

func TestEndToEnd_NotFound(t *testing.T) {
	srv := newLiveServer(t, "")
	a := newTestAdapter(t, srv.URL+"/prefix")

	_, err := a.Health(context.Background())

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "/prefix/health")
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestHealth_Unhealthy(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"status":"degraded","time":"2026-01-01T00:00:00.000Z"}`)

	got, err := newTestAdapter(t, srv.URL).Health(context.Background())

	require.ErrorIs(t, err, ErrUnhealthy)
	assert.Equal(t, "degraded", got.Status)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantDetail string
	}{
		{name: "forbidden", status: http.StatusForbidden, body: `{"error":"Forbidden","message":"Not allowed by CORS"}`, wantErr: ErrForbidden, wantDetail: "Not allowed by CORS"},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"Not Found","path":"/x"}`, wantErr: ErrNotFound, wantDetail: "/x"},
		{name: "internal", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error","message":"boom"}`, wantErr: ErrInternalServerError, wantDetail: "boom"},
		{name: "plain text", status: http.StatusInternalServerError, body: "oops", wantErr: ErrInternalServerError, wantDetail: "oops"},
		{name: "other status", status: http.StatusBadGateway, body: "", wantDetail: "http 502: Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, tt.status, tt.body)

			_, err := newTestAdapter(t, srv.URL).Info(context.Background())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.wantDetail)
		})
	}
}

func TestRequest_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, srv.URL).Status(ctx)

	require.Error(t, err)
}
