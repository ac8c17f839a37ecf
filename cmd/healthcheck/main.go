// Command healthcheck checks a locally running server and exits 0 when its
// /health route reports healthy, 1 otherwise. It reads the same
// configuration as the server, so PORT and .env apply.
package main

import (
	"context"
	"errors"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/autokirk-mcp-server/internal/adapter"
	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
)

const checkTimeout = 3 * time.Second

var errNoAdapter = errors.New("no adapter")

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("autokirk-healthcheck")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	a, err := adapter.NewHTTPServiceAdapter(localAddress(cfg.Server.Port), checkTimeout, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating adapter")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err = check(ctx, a); err != nil {
		log.Error().Err(err).Msg("unhealthy")
		return 1
	}
	return 0
}

func localAddress(port int) string {
	return "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
}

func check(ctx context.Context, a adapter.ServiceAdapter) error {
	if a == nil {
		return errNoAdapter
	}
	_, err := a.Health(ctx)
	return err
}
