// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	for name, addr := range map[string]string{
		"grpc address":    cfg.Server.GRPCAddress,
		"metrics address": cfg.Server.MetricsAddress,
	} {
		if addr == "" {
			continue
		}
		var na NetAddress
		if err := na.Set(addr); err != nil {
			return fmt.Errorf("%w: %s %q: %v", ErrInvalidServerConfigs, name, addr, err)
		}
	}

	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	if cfg.HTTP.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidHTTPConfigs)
	}

	return nil
}
