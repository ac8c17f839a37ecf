// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"strings"
	"time"
)

// Access-log format labels recognized in LOG_LEVEL. The names follow the
// conventional access-log presets; see the http handler for the field set
// emitted by each. Any other label is accepted and logged with the
// combined field set.
const (
	LogFormatDev      = "dev"
	LogFormatCombined = "combined"
	LogFormatCommon   = "common"
	LogFormatShort    = "short"
	LogFormatTiny     = "tiny"
)

var knownLogFormats = map[string]struct{}{
	LogFormatDev:      {},
	LogFormatCombined: {},
	LogFormatCommon:   {},
	LogFormatShort:    {},
	LogFormatTiny:     {},
}

// StructuredConfig is the top-level configuration container for the
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, an optional JSON file and defaults.
//
// Nested structs carry no envPrefix: the service reads the plain PORT,
// LOG_LEVEL and ALLOWED_ORIGINS variables.
type StructuredConfig struct {
	// Server holds listener addresses and the shutdown deadline.
	Server Server

	// Log holds the access-log format label.
	Log Log

	// CORS holds the cross-origin allow-list.
	CORS CORS

	// HTTP holds request handling limits.
	HTTP HTTP

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings for the inbound listeners.
type Server struct {
	// Port is the TCP port the HTTP server listens on (all interfaces).
	// Env: PORT
	Port int `env:"PORT"`

	// GRPCAddress is the "host:port" address of the optional gRPC health
	// listener. Empty disables it.
	// Env: GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// MetricsAddress is the "host:port" address of the optional Prometheus
	// listener. Empty disables it.
	// Env: METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of all listeners.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the access-log format label (dev, combined, common, short,
	// tiny, or any free-form value). The dev label additionally switches the
	// process logger to human-readable console output.
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// KnownFormat reports whether Level names one of the LogFormat* presets.
func (l Log) KnownFormat() bool {
	_, ok := knownLogFormats[l.Level]
	return ok
}

// CORS holds cross-origin settings.
type CORS struct {
	// AllowedOrigins is the raw comma-separated allow-list. A blank value
	// means every origin is allowed.
	// Env: ALLOWED_ORIGINS
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
}

// HTTP holds request handling settings.
type HTTP struct {
	// MaxBodyBytes caps the size of a JSON request body.
	// Env: MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Restricted reports whether an allow-list is configured.
func (c CORS) Restricted() bool {
	return strings.TrimSpace(c.AllowedOrigins) != ""
}

// Origins returns the parsed allow-list: entries split on commas, trimmed,
// with empty entries dropped. It returns nil when no allow-list is set.
func (c CORS) Origins() []string {
	if !c.Restricted() {
		return nil
	}

	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}

// HTTPAddress returns the listen address of the HTTP server.
func (s Server) HTTPAddress() string {
	return ":" + strconv.Itoa(s.Port)
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. .env file and environment variables
//  2. JSON file (path resolved from source 1)
//  3. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
