package models

import "encoding/json"

// StatusResponse is the payload of the root route. It confirms the
// deployment and reports the runtime environment the service started with.
type StatusResponse struct {
	// Status is always "ok".
	Status string `json:"status"`

	// Service is the human-readable service name.
	Service string `json:"service"`

	// Message is a short hint for operators.
	Message string `json:"message"`

	// Env describes the runtime and the resolved configuration.
	Env RuntimeEnv `json:"env"`
}

// RuntimeEnv is the env block of [StatusResponse].
type RuntimeEnv struct {
	// Node is the runtime version string. The key name is kept for clients
	// that already parse it.
	Node string `json:"node"`

	// Port is the HTTP listening port.
	Port int `json:"port"`

	// LogLevel is the configured access-log label.
	LogLevel string `json:"logLevel"`
}

// HealthResponse is the payload of the uptime check route.
type HealthResponse struct {
	// Status is always "healthy" while the process serves requests.
	Status string `json:"status"`

	// Time is the ISO-8601 timestamp of the call.
	Time string `json:"time"`
}

// InfoResponse carries static service metadata.
type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Time    string `json:"time"`
}

// PingResponse is the payload of the MCP ping stub. The stub performs no
// protocol work: Body is the parsed request body echoed back.
type PingResponse struct {
	// Type is always "mcp-ping".
	Type string `json:"type"`

	// ReceivedAt is the ISO-8601 timestamp of the call.
	ReceivedAt string `json:"receivedAt"`

	// Body is the parsed request body re-encoded as JSON, or JSON null when
	// none was sent.
	Body json.RawMessage `json:"body"`

	// Message is a short hint for integrators.
	Message string `json:"message"`
}

// ErrorResponse is the payload of every non-2xx answer produced by the
// service. Path is set for Not Found answers, Message for the others.
type ErrorResponse struct {
	Error   string `json:"error"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message,omitempty"`
}
