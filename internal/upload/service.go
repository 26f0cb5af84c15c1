// Package upload issues direct-to-object-store upload grants and exposes
// listing and deletion of stored media.
package upload

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ulp/panel/internal/storage"
)

// GrantTTL is how long an upload URL stays valid after issuance.
const GrantTTL = 15 * time.Minute

// ErrContentTypeNotAllowed is returned when an allow-list is configured and
// the requested content type is not on it.
var ErrContentTypeNotAllowed = errors.New("content type not allowed")

// Grant is a signed, content-type-bound write capability for one object key.
type Grant struct {
	UploadURL   string    `json:"uploadUrl"`
	ObjectPath  string    `json:"objectPath"`
	Method      string    `json:"method"`
	ContentType string    `json:"contentType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Service mediates between untrusted clients and the private object store.
// It holds no state of its own: every call goes to the store.
type Service struct {
	store        storage.Storage
	allowedTypes map[string]bool
	now          func() time.Time
}

// NewService creates an upload Service. An empty allowedContentTypes keeps
// the permissive behaviour of signing whatever content type the caller sends.
func NewService(store storage.Storage, allowedContentTypes []string) *Service {
	var allowed map[string]bool
	if len(allowedContentTypes) > 0 {
		allowed = make(map[string]bool, len(allowedContentTypes))
		for _, ct := range allowedContentTypes {
			allowed[strings.ToLower(ct)] = true
		}
	}
	return &Service{store: store, allowedTypes: allowed, now: time.Now}
}

// Sanitize returns the object key for directory and filename.
func (s *Service) Sanitize(directory, filename string) string {
	return storage.Sanitize(directory, filename)
}

// IssueUploadGrant signs a PUT URL for objectPath bound to contentType.
// Re-issuing for the same key yields another independent grant.
func (s *Service) IssueUploadGrant(ctx context.Context, objectPath, contentType string) (*Grant, error) {
	if s.allowedTypes != nil && !s.allowedTypes[strings.ToLower(contentType)] {
		return nil, fmt.Errorf("%w: %q", ErrContentTypeNotAllowed, contentType)
	}

	issuedAt := s.now()
	url, err := s.store.SignPut(ctx, objectPath, contentType, GrantTTL)
	if err != nil {
		return nil, fmt.Errorf("issue upload grant: %w", err)
	}

	return &Grant{
		UploadURL:   url,
		ObjectPath:  objectPath,
		Method:      http.MethodPut,
		ContentType: contentType,
		ExpiresAt:   issuedAt.Add(GrantTTL),
	}, nil
}

// ListByPrefix returns the public URL of every object under prefix, in store
// order. No match yields an empty, non-nil slice.
func (s *Service) ListByPrefix(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list by prefix: %w", err)
	}

	urls := make([]string, 0, len(keys))
	for _, k := range keys {
		urls = append(urls, s.store.PublicURL(k))
	}
	return urls, nil
}

// DeleteObject removes one object. Missing keys yield storage.ErrNotFound.
func (s *Service) DeleteObject(ctx context.Context, objectPath string) error {
	if err := s.store.Delete(ctx, objectPath); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// IsNotFound reports whether err means the object does not exist.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
