package errors

import (
	"errors"
	"net/http"

	"prestige-properties/pkg/cache"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case errors.Is(err, ErrPropertyNotFound):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgPropertyNotFound,
			MessageKey:       KeyPropertyNotFound,
			Code:             ErrCodePropertyNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case errors.Is(err, ErrInvalidForm):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidForm,
			MessageKey:       KeyInvalidForm,
			Code:             ErrCodeInvalidForm,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case errors.Is(err, ErrRelayFailed):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgRelayFailed,
			MessageKey:       KeyRelayFailed,
			Code:             ErrCodeRelayFailed,
			HTTPStatus:       http.StatusBadGateway,
			OriginalError:    err,
		}
	case errors.Is(err, ErrRateLimited):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgRateLimited,
			MessageKey:       KeyRateLimited,
			Code:             ErrCodeRateLimited,
			HTTPStatus:       http.StatusTooManyRequests,
			OriginalError:    err,
		}
	case cache.IsRetryable(err):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			MessageKey:       KeyServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			MessageKey:       KeyInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}
