package api

import "fmt"

// Code classifies API-level failures.
type Code string

const (
	CodeUnauthorized  Code = "UNAUTHORIZED"
	CodeForbidden     Code = "FORBIDDEN"
	CodeNotFound      Code = "NOT_FOUND"
	CodeRateLimited   Code = "RATE_LIMITED"
	CodeServerError   Code = "SERVER_ERROR"
	CodeRequestFailed Code = "REQUEST_FAILED"
)

// APIError is any non-2xx response (other than 422) or an envelope with
// success=false. StatusCode is zero for envelope-level failures.
type APIError struct {
	Code       Code
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: %s", e.Code)
}

// ValidationError is an HTTP 422 carrying field-level messages.
type ValidationError struct {
	Message string
	Errors  map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// NetworkError means no response was obtained: either the connectivity
// precheck failed (no request attempted) or the transport/timeout gave out.
// Queued reports that the request was appended to the offline queue for
// later replay.
type NetworkError struct {
	Queued bool
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network unavailable: %v", e.Err)
	}
	return "network unavailable"
}

func (e *NetworkError) Unwrap() error { return e.Err }
