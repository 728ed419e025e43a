package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Service defines cache operations used for derived analytics results.
// Values are stored JSON-encoded so memory and Redis backends behave the same.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, keys ...string) (bool, error)
}

// GetTyped retrieves a key and unmarshals into T.
func GetTyped[T any](ctx context.Context, c Service, key string) (T, bool, error) {
	var obj T
	var raw string
	if err := c.Get(ctx, key, &raw); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return obj, false, nil
		}
		return obj, false, err
	}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return obj, false, err
	}
	return obj, true, nil
}

// SetTyped marshals a value to JSON and stores it.
func SetTyped[T any](ctx context.Context, c Service, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(data), ttl)
}
