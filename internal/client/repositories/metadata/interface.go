// Package metadata is the key/value side of the local vault: small string
// settings stored in the metadata table next to the assets.
package metadata

import (
	"context"
)

// Repository is a string key/value store.
type Repository interface {
	// Get returns the value of key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}
