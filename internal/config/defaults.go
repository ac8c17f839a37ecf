package config

import "time"

// Defaults applied to every field left empty by the other sources.
const (
	DefaultPort            = 3000
	DefaultLogFormat       = LogFormatDev
	DefaultMaxBodyBytes    = 100 << 10
	DefaultShutdownTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: Log{
			Level: DefaultLogFormat,
		},
		HTTP: HTTP{
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}
