package errors

import (
	"fmt"
	"net/http"
	"testing"

	"prestige-properties/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
		wantKey    string
	}{
		{"not found", fmt.Errorf("slug %q: %w", "x", ErrPropertyNotFound), ErrCodePropertyNotFound, http.StatusNotFound, KeyPropertyNotFound},
		{"validation", &ValidationError{Fields: map[string]string{"email": "invalid"}}, ErrCodeInvalidForm, http.StatusBadRequest, KeyInvalidForm},
		{"relay", fmt.Errorf("status 500: %w", ErrRelayFailed), ErrCodeRelayFailed, http.StatusBadGateway, KeyRelayFailed},
		{"rate limited", ErrRateLimited, ErrCodeRateLimited, http.StatusTooManyRequests, KeyRateLimited},
		{"session store down", fmt.Errorf("saving scroll: %w", cache.NewCacheError("set", fmt.Errorf("dial tcp: refused"), true)), ErrCodeServiceUnavailable, http.StatusServiceUnavailable, KeyServiceUnavailable},
		{"unknown", fmt.Errorf("boom"), ErrCodeInternal, http.StatusInternalServerError, KeyInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := MapError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.wantKey, appErr.MessageKey)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestMapError_PassesAppErrorThrough(t *testing.T) {
	original := NewAppError("tech", "user", ErrCodeInvalidParameters, http.StatusBadRequest, nil)
	wrapped := fmt.Errorf("handler: %w", original)

	assert.Same(t, original, MapError(wrapped))
	assert.Nil(t, MapError(nil))
	assert.Equal(t, "tech", original.Error())
}
