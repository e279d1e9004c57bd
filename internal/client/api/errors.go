package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the server could not
	// be reached or did not answer.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401/403 responses: the credential was rejected.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response carrying the server-supplied detail
// message (FastAPI-style {"detail": "..."} bodies).
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Unwrap maps authentication rejections onto ErrUnauthorized so callers can
// dispatch with errors.Is.
func (e *APIError) Unwrap() error {
	if e.Status == 401 || e.Status == 403 {
		return ErrUnauthorized
	}
	return nil
}

// ErrorDetail extracts the server-supplied detail from err, falling back to
// the given generic message. Used by user-facing surfaces.
func ErrorDetail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
