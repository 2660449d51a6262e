package cache

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestSessionStateKey(t *testing.T) {
	assert.Equal(t, "session:abc:scrollToContact", SessionStateKey("abc", "scrollToContact"))
	assert.Equal(t, "session:abc:carousel:villa", SessionStateKey("abc", "carousel:villa"))
}

func TestCacheErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewCacheError("get", cause, true)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cache operation get failed: connection refused", err.Error())
	assert.True(t, err.Retryable)
}

func TestCacheErrorWithKey(t *testing.T) {
	err := NewCacheError("set", errors.New("timeout"), true).WithKey("session:abc:propertyInquiry")

	assert.Equal(t, "cache operation set on session:abc:propertyInquiry failed: timeout", err.Error())
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestIsMiss(t *testing.T) {
	assert.True(t, IsMiss(redis.Nil))
	assert.False(t, IsMiss(errors.New("other")))
}
