// Package auth handles email and password sign-in for panel accounts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ulp/panel/internal/middleware"
	"github.com/ulp/panel/internal/user"
)

// Authenticator verifies an email and password pair.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *user.User
}

// Service contains the business logic for credential sign-in.
type Service struct {
	users     Authenticator
	jwtSecret string
	ttl       time.Duration
	now       func() time.Time
}

// NewService creates a new auth Service.
func NewService(users Authenticator, jwtSecret string, ttl time.Duration) *Service {
	return &Service{users: users, jwtSecret: jwtSecret, ttl: ttl, now: time.Now}
}

// Login checks the credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.issueToken(u, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}

// IsInvalidCredentials reports whether err is a failed sign-in.
func (s *Service) IsInvalidCredentials(err error) bool {
	return errors.Is(err, user.ErrInvalidCredentials)
}

// issueToken creates a signed JWT for the given user.
func (s *Service) issueToken(u *user.User, expiresAt time.Time) (string, error) {
	claims := middleware.Claims{
		Email: u.Email,
		Name:  u.FullName,
		Role:  u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
