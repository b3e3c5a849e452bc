// Package metadata is a key/value repository over the local "metadata" table.
// Values are opaque bytes; callers decide about encoding and sealing.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// GetMany returns the present keys only.
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the given keys; absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
}
