// Package errors provides standardized error handling for the site backend.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidPayload   ErrorCode = "INVALID_PAYLOAD"

	ErrCodeConfigMissing ErrorCode = "CONFIG_MISSING"

	ErrCodeContentFetchFailed ErrorCode = "CONTENT_FETCH_FAILED"
	ErrCodeStoreCreateFailed  ErrorCode = "STORE_CREATE_FAILED"

	ErrCodeArchiveInsertFailed    ErrorCode = "ARCHIVE_INSERT_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeCRMSyncFailed          ErrorCode = "CRM_SYNC_FAILED"

	ErrCodeDraftNotFound     ErrorCode = "DRAFT_NOT_FOUND"
	ErrCodeDraftStoreFailed  ErrorCode = "DRAFT_STORE_FAILED"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable request validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Name and email are required",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidPayloadError creates a non-retryable malformed body error.
func NewInvalidPayloadError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPayload,
		Message:   "Invalid request body",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigMissingError creates a non-retryable configuration error.
func NewConfigMissingError(setting string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigMissing,
		Message:   "Server configuration error",
		Details:   fmt.Sprintf("missing setting: %s", setting),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewContentFetchFailedError creates a retryable content store read error.
func NewContentFetchFailedError(slug string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeContentFetchFailed,
		Message:   "Content store fetch failed",
		Details:   fmt.Sprintf("slug: %s, error: %s", slug, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreCreateFailedError creates a retryable content store write error.
func NewStoreCreateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreCreateFailed,
		Message:   "Failed to submit inquiry",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewArchiveInsertFailedError creates a retryable archive insert error.
func NewArchiveInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeArchiveInsertFailed,
		Message:   "Lead archive insert failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCRMSyncFailedError creates a retryable CRM forwarding error.
func NewCRMSyncFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCRMSyncFailed,
		Message:   "CRM lead sync failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftNotFoundError creates a non-retryable missing draft error.
func NewDraftNotFoundError(token string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftNotFound,
		Message:   "Form session not found or expired",
		Details:   fmt.Sprintf("token: %s", token),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftStoreFailedError creates a retryable draft persistence error.
func NewDraftStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftStoreFailed,
		Message:   "Failed to save form progress",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidTransitionError creates a non-retryable form state machine error.
func NewInvalidTransitionError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTransition,
		Message:   "Action not allowed in current form state",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
