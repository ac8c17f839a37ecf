package main

import (
	"fmt"

	"github.com/MKhiriev/autokirk-mcp-server/internal/config"
	"github.com/MKhiriev/autokirk-mcp-server/internal/handler"
	"github.com/MKhiriev/autokirk-mcp-server/internal/logger"
	"github.com/MKhiriev/autokirk-mcp-server/internal/metrics"
	"github.com/MKhiriev/autokirk-mcp-server/internal/server"
	"github.com/MKhiriev/autokirk-mcp-server/internal/service"
	"github.com/MKhiriev/autokirk-mcp-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "autokirk-mcp-server"

func main() {
	build := printBuildInfo()

	log := logger.NewLogger(role)
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Log.Level == config.LogFormatDev {
		log = logger.NewConsoleLogger(role)
	}

	log.Info().
		Str("version", build.BuildVersion()).
		Str("commit", build.BuildCommit()).
		Msg("starting")
	log.Debug().Any("config", cfg).Msg("received configs")

	var m *metrics.Metrics
	if cfg.Server.MetricsAddress != "" {
		if m, err = metrics.New(); err != nil {
			log.Fatal().Err(err).Msg("error creating metrics")
		}
	}

	services := service.NewServices(cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
