package api

import (
	"encoding/json"
	"fmt"
)

// envelope is the wire shape every backend response uses. It is never
// persisted; bodies are unwrapped into domain values immediately.
type envelope[T any] struct {
	Success bool                `json:"success"`
	Data    T                   `json:"data"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// unwrap decodes an envelope body and returns its data. An envelope with
// success=false becomes an APIError carrying the server's message.
func unwrap[T any](body []byte) (T, error) {
	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		var zero T
		return zero, fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		var zero T
		return zero, &APIError{Code: CodeRequestFailed, Message: msg}
	}
	return env.Data, nil
}

// unwrapEmpty verifies success for operations that return no payload.
// An empty body (204-style response) counts as success.
func unwrapEmpty(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	_, err := unwrap[json.RawMessage](body)
	return err
}

// messageFrom extracts the envelope message out of an error body, if any.
func messageFrom(body []byte) string {
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}

// validationFrom builds a ValidationError out of a 422 body.
func validationFrom(body []byte) *ValidationError {
	var env envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return &ValidationError{Message: "validation failed"}
	}
	msg := env.Message
	if msg == "" {
		msg = "validation failed"
	}
	return &ValidationError{Message: msg, Errors: env.Errors}
}
