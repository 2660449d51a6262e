package cache

import (
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// CacheError wraps a failed Redis operation with the command that failed.
type CacheError struct {
	Operation string
	Key       string
	Err       error
	Retryable bool
}

func NewCacheError(operation string, err error, retryable bool) *CacheError {
	return &CacheError{
		Operation: operation,
		Err:       err,
		Retryable: retryable,
	}
}

// WithKey attaches the key involved in the failed operation.
func (e *CacheError) WithKey(key string) *CacheError {
	e.Key = key
	return e
}

func (e *CacheError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("cache operation %s on %s failed: %v", e.Operation, e.Key, e.Err)
	}
	return fmt.Sprintf("cache operation %s failed: %v", e.Operation, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a CacheError marked retryable.
func IsRetryable(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr) && cacheErr.Retryable
}

// IsMiss reports whether err is the Redis "key does not exist" reply.
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}
