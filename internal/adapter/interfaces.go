// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the Autokirk MCP server HTTP API.
//
// The primary abstraction is [ServiceAdapter]. The package ships an
// HTTP/REST implementation ([NewHTTPServiceAdapter]) used by the container
// health check and by end-to-end tests.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrForbidden] for a CORS rejection).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/autokirk-mcp-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServiceAdapter defines client access to the server routes. Implementations
// decode the JSON payloads and map non-2xx answers to the sentinel errors of
// this package.
type ServiceAdapter interface {
	// Status calls GET /.
	Status(ctx context.Context) (models.StatusResponse, error)

	// Health calls GET /health. A 2xx answer whose status is not "healthy"
	// is reported as [ErrUnhealthy].
	Health(ctx context.Context) (models.HealthResponse, error)

	// Info calls GET /api/info.
	Info(ctx context.Context) (models.InfoResponse, error)

	// Ping calls POST /api/mcp/ping with body as JSON. A nil body sends no
	// payload.
	Ping(ctx context.Context, body json.RawMessage) (models.PingResponse, error)
}
