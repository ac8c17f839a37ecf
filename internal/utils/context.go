// Package utils provides general-purpose helper utilities
// used across different parts of the service.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, timestamp
// formatting and identifier generation.
package utils

import (
	"context"
	"encoding/json"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// JSONBodyCtxKey is the key used to store the parsed JSON request body in
// the context. Use WithJSONBody and GetJSONBodyFromContext instead of
// accessing it directly.
var JSONBodyCtxKey = contextKey("jsonBody")

// WithJSONBody returns a copy of ctx carrying body as the parsed request
// body.
func WithJSONBody(ctx context.Context, body json.RawMessage) context.Context {
	return context.WithValue(ctx, JSONBodyCtxKey, body)
}

// GetJSONBodyFromContext retrieves the parsed JSON request body.
//
// Returns the raw JSON value and an ok flag:
//   - ok == true: a body was parsed for this request
//   - ok == false: the request carried no JSON body
//
// Example usage:
//
//	body, ok := utils.GetJSONBodyFromContext(r.Context())
//	if !ok {
//	    // no body was sent
//	}
func GetJSONBodyFromContext(ctx context.Context) (json.RawMessage, bool) {
	body, ok := ctx.Value(JSONBodyCtxKey).(json.RawMessage)
	return body, ok
}
