package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned for contact payloads that fail validation.
var ErrInvalid = errors.New("invalid contact")

var validTypes = map[string]bool{
	TypeBuilder:        true,
	TypeSourcingAgent:  true,
	TypeClosingPartner: true,
}

// Store is the persistence the Service needs.
type Store interface {
	List(ctx context.Context, contactType string) ([]Contact, error)
	Get(ctx context.Context, id int64) (*Contact, error)
	Create(ctx context.Context, c *Contact) (*Contact, error)
}

// Service contains business logic for contacts.
type Service struct {
	repo Store
}

// NewService creates a new contact Service.
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// List returns contacts, optionally filtered by type.
func (s *Service) List(ctx context.Context, contactType string) ([]Contact, error) {
	if contactType != "" && !validTypes[contactType] {
		return nil, fmt.Errorf("%w: contact_type must be one of: builder, sourcing_agent, closing_partner", ErrInvalid)
	}
	return s.repo.List(ctx, contactType)
}

// Get returns one contact.
func (s *Service) Get(ctx context.Context, id int64) (*Contact, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and stores a contact.
func (s *Service) Create(ctx context.Context, c *Contact) (*Contact, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	if c.FullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", ErrInvalid)
	}
	if !validTypes[c.ContactType] {
		return nil, fmt.Errorf("%w: contact_type must be one of: builder, sourcing_agent, closing_partner", ErrInvalid)
	}
	return s.repo.Create(ctx, c)
}
