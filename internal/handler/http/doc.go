// Package http implements the HTTP transport layer of the service.
//
// It exposes route wiring, request handlers, and the middleware pipeline.
// Every request passes through, in order: trace ID assignment, metrics,
// security headers, JSON body parsing, access logging, CORS enforcement and
// panic recovery before reaching a route handler. Every outcome, including
// unmatched routes and failures, is answered with a JSON body.
package http
