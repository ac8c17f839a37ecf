package handler

import (
	"testing"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(port int, grpcAddress string) *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{Port: port, GRPCAddress: grpcAddress},
		Log:    config.Log{Level: config.LogFormatDev},
		HTTP:   config.HTTP{MaxBodyBytes: config.DefaultMaxBodyBytes},
	}
}

func newTestServices(cfg *config.StructuredConfig) *service.Services {
	return service.NewServices(cfg, logger.Nop())
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		port     int
		grpcAddr string
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "http only", port: 3000, wantHTTP: true},
		{name: "http and grpc", port: 3000, grpcAddr: "127.0.0.1:9090", wantHTTP: true, wantGRPC: true},
		{name: "grpc only", grpcAddr: ":9090", wantGRPC: true},
		{name: "nothing enabled", wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(tt.port, tt.grpcAddr)

			h, err := NewHandlers(newTestServices(cfg), cfg, nil, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_HTTPRouterIsUsable(t *testing.T) {
	cfg := newTestConfig(3000, "")

	h, err := NewHandlers(newTestServices(cfg), cfg, nil, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, h.HTTP.Init())
}
