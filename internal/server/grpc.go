package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/autokirk-mcp-server/internal/handler/grpc"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: address,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: grpc on %s: %w", errListen, g.address, err)
	}

	g.logger.Info().
		Str("server", "grpc").
		Str("address", ln.Addr().String()).
		Msg("listening")

	if err = g.server.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown flips the health status to NOT_SERVING, then drains open RPCs.
// Streams still open when ctx expires are cut with Stop.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Str("server", "grpc").Msg("shutting down")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("%w: grpc: %w", errShutdown, ctx.Err())
	}
}
