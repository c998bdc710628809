package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss signals an absent key. Callers fall through to the upstream fetch.
var ErrMiss = errors.New("cache: miss")

// Cache is the minimal key/value contract used by the portal services.
// A nil Cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
