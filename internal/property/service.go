package property

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// Store is the persistence the Service needs.
type Store interface {
	List(ctx context.Context) ([]Property, error)
	Get(ctx context.Context, id int64) (*Property, error)
	Create(ctx context.Context, p *Property) (*Property, error)
	Update(ctx context.Context, id int64, apply func(*Property) error) (*Property, error)
	Delete(ctx context.Context, id int64) error
}

// Service contains business logic for property records.
type Service struct {
	repo Store
}

// NewService creates a new property Service.
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// List returns every property, newest first.
func (s *Service) List(ctx context.Context) ([]Property, error) {
	return s.repo.List(ctx)
}

// Get returns a property by id.
func (s *Service) Get(ctx context.Context, id int64) (*Property, error) {
	return s.repo.Get(ctx, id)
}

// Create validates p, fills enum defaults and stores it.
func (s *Service) Create(ctx context.Context, p *Property) (*Property, error) {
	p.ID = 0
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

// Update merges the JSON object patch onto the stored record. Fields absent
// from patch keep their stored values; id and timestamps cannot be changed.
func (s *Service) Update(ctx context.Context, id int64, patch []byte) (*Property, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &fields); err != nil || fields == nil {
		return nil, invalid("request body must be a JSON object")
	}

	return s.repo.Update(ctx, id, func(p *Property) error {
		keepID, createdAt, updatedAt := p.ID, p.CreatedAt, p.UpdatedAt
		// Unmarshal merges into maps, so the amenities object is replaced
		// rather than combined with the stored one.
		if _, ok := fields["property_amenities_json"]; ok {
			p.Amenities = nil
		}

		dec := json.NewDecoder(bytes.NewReader(patch))
		dec.DisallowUnknownFields()
		if err := dec.Decode(p); err != nil {
			return invalid("invalid request body: %v", err)
		}
		p.ID, p.CreatedAt, p.UpdatedAt = keepID, createdAt, updatedAt
		return p.Validate()
	})
}

// Delete removes a property.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// IsNotFound returns true when the error indicates a property was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
