// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrorKind is the closed set of failure classes the HTTP layer answers.
// writeError switches over every kind.
type ErrorKind int

const (
	// KindInternal covers handler failures and recovered panics.
	KindInternal ErrorKind = iota
	// KindNotFound means no route matched the method and path.
	KindNotFound
	// KindParse covers unreadable, oversized or malformed JSON bodies.
	KindParse
	// KindCORS means the request origin is not on the allow-list.
	KindCORS
)

func (k ErrorKind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindNotFound:
		return "not_found"
	case KindParse:
		return "parse"
	case KindCORS:
		return "cors"
	default:
		return "unknown"
	}
}

// RequestError ties an error to the kind that decides how it is answered.
type RequestError struct {
	Kind ErrorKind
	Err  error
}

func newRequestError(kind ErrorKind, err error) *RequestError {
	return &RequestError{Kind: kind, Err: err}
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Sentinel errors wrapped into [RequestError] values. Callers can match
// against them with [errors.Is].
var (
	// ErrRouteNotFound is reported when no route matches the request.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMalformedJSON wraps the decoder error of an unparsable body.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrJSONTopLevel is returned when the body parses but is neither an
	// object nor an array.
	ErrJSONTopLevel = errors.New("request body must be a JSON object or array")

	// ErrBodyTooLarge is returned when the body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request entity too large")

	// ErrReadingBody wraps I/O failures while reading the body.
	ErrReadingBody = errors.New("error reading request body")

	// ErrNotAllowedByCORS is returned for origins outside the allow-list.
	ErrNotAllowedByCORS = errors.New("Not allowed by CORS")

	// ErrHandlerPanic wraps the value recovered from a panicking handler.
	ErrHandlerPanic = errors.New("handler panic")
)
