package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	// MessageKey selects the localized variant of UserMessage in the message catalog.
	MessageKey    string
	Code          string
	HTTPStatus    int
	OriginalError error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return e.TechnicalMessage
	}
	return fmt.Sprintf("%s: %v", e.TechnicalMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodePropertyNotFound   = "PROPERTY_NOT_FOUND"
	ErrCodeInvalidForm        = "INVALID_FORM"
	ErrCodeRelayFailed        = "RELAY_FAILED"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInvalidParameters  = "INVALID_PARAMETERS"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Sentinel causes recognized by MapError.
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrRelayFailed      = errors.New("form relay failed")
	ErrInvalidForm      = errors.New("invalid form submission")
	ErrRateLimited      = errors.New("rate limit exceeded")
)

// ValidationError lists the fields of a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid form submission: %d field(s) rejected", len(e.Fields))
}

// Is lets errors.Is(err, ErrInvalidForm) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidForm
}
