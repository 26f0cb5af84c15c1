// Package contact manages builders, sourcing agents and closing partners
// linked to properties.
package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Contact types.
const (
	TypeBuilder        = "builder"
	TypeSourcingAgent  = "sourcing_agent"
	TypeClosingPartner = "closing_partner"
)

// Contact mirrors a row of the contacts table.
type Contact struct {
	ID          int64     `json:"id"           example:"4"`
	FullName    string    `json:"full_name"    example:"Jorge Ramírez"`
	CompanyName *string   `json:"company_name" example:"Constructora Bajío"`
	ContactType string    `json:"contact_type" example:"builder"`
	PhoneNumber *string   `json:"phone_number" example:"+52 442 123 4567"`
	Email       *string   `json:"email"        example:"jorge@bajio.mx"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrNotFound is returned when a contact does not exist.
var ErrNotFound = errors.New("contact not found")

// Repository handles contact persistence.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new contact Repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const columns = `id, full_name, company_name, contact_type, phone_number, email, created_at`

// List returns contacts ordered by name. A non-empty contactType filters by type.
func (r *Repository) List(ctx context.Context, contactType string) ([]Contact, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+columns+` FROM contacts
		 WHERE $1 = '' OR contact_type = $1
		 ORDER BY full_name`,
		contactType,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Contact])
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if out == nil {
		out = []Contact{}
	}
	return out, nil
}

// Get fetches a contact by id.
func (r *Repository) Get(ctx context.Context, id int64) (*Contact, error) {
	rows, err := r.db.Query(ctx, `SELECT `+columns+` FROM contacts WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[Contact])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// Create inserts a contact.
func (r *Repository) Create(ctx context.Context, c *Contact) (*Contact, error) {
	rows, err := r.db.Query(ctx,
		`INSERT INTO contacts (full_name, company_name, contact_type, phone_number, email)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+columns,
		c.FullName, c.CompanyName, c.ContactType, c.PhoneNumber, c.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[Contact])
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return created, nil
}
