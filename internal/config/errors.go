package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot be used to start the service.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 1..65535 or a malformed host:port address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidHTTPConfigs indicates invalid request handling settings
	// (for example, a non-positive body size limit).
	ErrInvalidHTTPConfigs = errors.New("invalid http configuration")
)
