package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/handler"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/metrics"
)

type server struct {
	httpServer    *httpServer
	gRPCServer    *grpcServer
	metricsServer *httpServer

	shutdownTimeout time.Duration

	logger *logger.Logger
}

// NewServer creates one listener per enabled transport. The metrics listener
// is created only when both m and METRICS_ADDRESS are set.
func NewServer(handlers *handler.Handlers, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if handlers.HTTP != nil {
		servers.httpServer = newHTTPServer("http", handlers.HTTP.Init(), cfg.HTTPAddress(), logger)
		servers.httpServer.announce = "Autokirk MCP server listening"
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
	}
	if m != nil && cfg.MetricsAddress != "" {
		servers.metricsServer = newHTTPServer("metrics", metricsMux(m), cfg.MetricsAddress, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or a listener
// fails, then shuts every listener down within the configured timeout.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers() {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *server) servers() []Server {
	var list []Server
	// public listener first so it stops taking requests before the rest
	if s.httpServer != nil {
		list = append(list, s.httpServer)
	}
	if s.gRPCServer != nil {
		list = append(list, s.gRPCServer)
	}
	if s.metricsServer != nil {
		list = append(list, s.metricsServer)
	}
	return list
}

// run starts every listener and waits for ctx to end or for the first
// listener failure.
func (s *server) run(ctx context.Context) error {
	servers := s.servers()
	if len(servers) == 0 {
		return errNoServersAreCreated
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func() {
			if err := srv.RunServer(); err != nil {
				errCh <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		s.logger.Error().Err(runErr).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("error during shutdown")
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}
