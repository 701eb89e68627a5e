// Package interfaces defines the contracts between the ingestion core and
// the infrastructure that talks to browsers, HTTP servers, caches and files.
package interfaces

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value backend. The content cache layers
// run-scoped URL caching on top of it; in-memory and Redis implementations
// live under infrastructure/cache.
//
// Example usage:
//
//	err := backend.Set(ctx, "content:run-1:https://example.com/a", body, 0)
//	data, err := backend.Get(ctx, "content:run-1:https://example.com/a")
//	if errors.Is(err, apperrors.ErrCacheMiss) {
//		// not cached yet
//	}
type Cache interface {
	// Get retrieves a value by key. A missing key yields ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A ttl of 0 stores it until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
