// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup.
// The S3 implementation (AWS SDK) signs V4 URLs for AWS and for GCS through its
// XML interoperability API; the MinIO implementation targets MinIO and other
// S3-compatible servers.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no object exists at the requested key.
var ErrNotFound = errors.New("object not found")

// ErrSigning is returned when the store cannot produce a signed URL,
// typically because the credential lacks signing capability.
var ErrSigning = errors.New("sign url")

// Storage is the interface for issuing upload URLs and managing objects.
type Storage interface {
	// SignPut returns a URL that accepts a single PUT of key with exactly
	// contentType until expiry elapses.
	SignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	// List returns the keys of all objects starting with prefix, in store order.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes an object identified by key, or returns ErrNotFound.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}
