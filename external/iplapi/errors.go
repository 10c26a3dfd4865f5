package iplapi

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotFound matches any *APIError with status 404.
	ErrNotFound = errors.New("iplapi: resource not found")
	// ErrUnavailable marks network failures, 5xx and 429 responses, and an open circuit breaker.
	ErrUnavailable = errors.New("iplapi: service unavailable")
)

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("iplapi: status=%d code=%s", e.Status, e.Code)
	}
	return fmt.Sprintf("iplapi: status=%d code=%s: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnavailable:
		return retryableStatus(e.Status)
	}
	return false
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func isCircuitFailure(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
