// Package development manages developments and gated communities that
// properties can belong to.
package development

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Development mirrors a row of the developments table.
type Development struct {
	ID              int64          `json:"id"                    example:"3"`
	Name            string         `json:"name"                  example:"Altozano"`
	City            *string        `json:"city"                  example:"Querétaro"`
	LocationZone    *string        `json:"location_zone"         example:"Norte"`
	CommonAmenities map[string]any `json:"common_amenities_json" swaggertype:"object"`
	CreatedAt       time.Time      `json:"created_at"`
}

// ErrNotFound is returned when a development does not exist.
var ErrNotFound = errors.New("development not found")

// ErrAlreadyExists is returned when a development name is already taken.
var ErrAlreadyExists = errors.New("development already exists")

// ErrNameRequired is returned when creating a development without a name.
var ErrNameRequired = errors.New("name is required")

// Store is the persistence the Service needs.
type Store interface {
	List(ctx context.Context) ([]Development, error)
	Get(ctx context.Context, id int64) (*Development, error)
	Create(ctx context.Context, d *Development) (*Development, error)
}

// Repository handles development persistence.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new development Repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const columns = `id, name, city, location_zone, common_amenities_json, created_at`

func scan(row pgx.Row) (*Development, error) {
	d := &Development{}
	if err := row.Scan(&d.ID, &d.Name, &d.City, &d.LocationZone, &d.CommonAmenities, &d.CreatedAt); err != nil {
		return nil, err
	}
	return d, nil
}

// List returns all developments ordered by name.
func (r *Repository) List(ctx context.Context) ([]Development, error) {
	rows, err := r.db.Query(ctx, `SELECT `+columns+` FROM developments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list developments: %w", err)
	}
	defer rows.Close()

	out := []Development{}
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan development: %w", err)
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// Get fetches a development by id.
func (r *Repository) Get(ctx context.Context, id int64) (*Development, error) {
	d, err := scan(r.db.QueryRow(ctx, `SELECT `+columns+` FROM developments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get development: %w", err)
	}
	return d, nil
}

// Create inserts a development.
func (r *Repository) Create(ctx context.Context, d *Development) (*Development, error) {
	created, err := scan(r.db.QueryRow(ctx,
		`INSERT INTO developments (name, city, location_zone, common_amenities_json)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+columns,
		d.Name, d.City, d.LocationZone, d.CommonAmenities,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create development: %w", err)
	}
	return created, nil
}

// Service contains business logic for developments.
type Service struct {
	repo Store
}

// NewService creates a new development Service.
func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

// List returns all developments.
func (s *Service) List(ctx context.Context) ([]Development, error) {
	return s.repo.List(ctx)
}

// Get returns one development.
func (s *Service) Get(ctx context.Context, id int64) (*Development, error) {
	return s.repo.Get(ctx, id)
}

// Create validates and stores a development.
func (s *Service) Create(ctx context.Context, d *Development) (*Development, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.Create(ctx, d)
}
