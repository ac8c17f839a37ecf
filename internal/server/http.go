package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
)

// httpServer serves an [http.Handler] on a TCP address. It backs both the
// public API listener and the metrics listener.
type httpServer struct {
	name   string
	server *http.Server

	// announce is the message logged once the listener is bound.
	announce string

	mu       sync.Mutex
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(name string, handler http.Handler, addr string, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		announce: "listening",
		logger:   logger,
	}
}

func (h *httpServer) RunServer() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %s on %s: %w", errListen, h.name, h.server.Addr, err)
	}

	h.mu.Lock()
	h.listener = ln
	h.mu.Unlock()

	event := h.logger.Info().
		Str("server", h.name).
		Str("address", ln.Addr().String())
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		event = event.Int("port", tcpAddr.Port)
	}
	event.Msg(h.announce)

	if err = h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server Serve: %w", h.name, err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Str("server", h.name).Msg("shutting down")

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", errShutdown, h.name, err)
	}
	return nil
}

// addr returns the bound address, or "" before the listener is open.
func (h *httpServer) addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener == nil {
		return ""
	}
	return h.listener.Addr().String()
}
