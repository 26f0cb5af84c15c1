package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned both for an unknown email and for a wrong
// password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidRole is returned when creating a user with an unknown role.
var ErrInvalidRole = errors.New("invalid role")

// Store is the persistence the Service needs.
type Store interface {
	Create(ctx context.Context, email, fullName, passwordHash, role string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Service contains business logic for user management.
type Service struct {
	repo Store
	cost int
}

// NewService creates a new user Service.
func NewService(repo Store) *Service {
	return &Service{repo: repo, cost: bcrypt.DefaultCost}
}

// Create registers a new account with a bcrypt hash of password.
func (s *Service) Create(ctx context.Context, email, fullName, password, role string) (*User, error) {
	if role != RoleAdmin && role != RoleEditor {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, normalizeEmail(email), fullName, string(hash), role)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate returns the account matching email and password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID returns a user by id.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// IsNotFound returns true when the error indicates a user was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
