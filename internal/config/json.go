package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Server struct {
		Port            int      `json:"port"`
		GRPCAddress     string   `json:"grpc_address"`
		MetricsAddress  string   `json:"metrics_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	CORS struct {
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"cors,omitempty"`

	HTTP struct {
		MaxBodyBytes int64 `json:"max_body_bytes"`
	} `json:"http,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Port:            jsonCfg.Server.Port,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			MetricsAddress:  jsonCfg.Server.MetricsAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		CORS: CORS{
			AllowedOrigins: strings.Join(jsonCfg.CORS.AllowedOrigins, ","),
		},
		HTTP: HTTP{
			MaxBodyBytes: jsonCfg.HTTP.MaxBodyBytes,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
