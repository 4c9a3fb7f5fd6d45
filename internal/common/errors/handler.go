// internal/common/errors/handler.go
package errors

import (
	"errors"
	"net/http"
	"time"
)

// HTTPResponse is the error body returned to clients. The message stays
// generic; Details never leaves the server.
type HTTPResponse struct {
	Error string `json:"error"`
}

// Logger is the minimal logging surface the error handler needs.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// Handler maps application errors to HTTP responses and logs the detail
// server-side only.
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// HTTPStatus returns the status code for an error code. Validation problems
// are the caller's fault; everything else is a server-side failure.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeInvalidPayload, ErrCodeInvalidTransition:
		return http.StatusBadRequest
	case ErrCodeDraftNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Normalize ensures we always have a StandardError to work with.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Respond logs the full error and returns the status plus the generic body.
func (h *Handler) Respond(requestPath string, err error) (int, HTTPResponse) {
	stdErr := Normalize(err)
	status := HTTPStatus(stdErr.Code)

	h.logger.Error("request failed", map[string]interface{}{
		"path":      requestPath,
		"errorCode": string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
		"status":    status,
	})

	return status, HTTPResponse{Error: stdErr.Message}
}
