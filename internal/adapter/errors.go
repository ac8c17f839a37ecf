package adapter

import "errors"

var (
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnhealthy           = errors.New("service reported unhealthy")
)
