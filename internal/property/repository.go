package property

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// writableColumns are set by INSERT and UPDATE, in the order values returns them.
var writableColumns = []string{
	"listing_id", "development_id", "builder_contact_id", "sourcing_contact_id",
	"property_name", "description", "property_type", "property_status", "listing_status",
	"address", "city", "location_zone", "location_lat", "location_lon", "is_in_gated_community",
	"lot_area_sq_meters", "construction_area_sq_meters", "stories", "bedrooms", "bathrooms",
	"studio", "parking_slots",
	"has_garage", "has_patio", "has_roof_garden", "has_pool",
	"price_mxn", "maintenance_fee_mxn",
	"nearby_pois_json", "property_amenities_json",
	"virtual_tour_url", "floor_plan_urls", "gcs_image_urls", "gcs_video_urls",
	"build_date",
}

var (
	selectColumns = "id, " + strings.Join(writableColumns, ", ") + ", created_at, updated_at"
	placeholders  = placeholderList(len(writableColumns))
)

func placeholderList(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = "$" + strconv.Itoa(i+1)
	}
	return strings.Join(ph, ", ")
}

func values(p *Property) []any {
	return []any{
		p.ListingID, p.DevelopmentID, p.BuilderContactID, p.SourcingContactID,
		p.PropertyName, p.Description, p.PropertyType, p.PropertyStatus, p.ListingStatus,
		p.Address, p.City, p.LocationZone, p.LocationLat, p.LocationLon, p.IsInGatedCommunity,
		p.LotAreaSqMeters, p.ConstructionAreaSqMeters, p.Stories, p.Bedrooms, p.Bathrooms,
		p.Studio, p.ParkingSlots,
		p.HasGarage, p.HasPatio, p.HasRoofGarden, p.HasPool,
		p.PriceMXN, p.MaintenanceFeeMXN,
		p.NearbyPOIs, p.Amenities,
		p.VirtualTourURL, p.FloorPlanURLs, p.GCSImageURLs, p.GCSVideoURLs,
		p.BuildDate,
	}
}

func scanProperty(row pgx.Row) (*Property, error) {
	p := &Property{}
	err := row.Scan(
		&p.ID,
		&p.ListingID, &p.DevelopmentID, &p.BuilderContactID, &p.SourcingContactID,
		&p.PropertyName, &p.Description, &p.PropertyType, &p.PropertyStatus, &p.ListingStatus,
		&p.Address, &p.City, &p.LocationZone, &p.LocationLat, &p.LocationLon, &p.IsInGatedCommunity,
		&p.LotAreaSqMeters, &p.ConstructionAreaSqMeters, &p.Stories, &p.Bedrooms, &p.Bathrooms,
		&p.Studio, &p.ParkingSlots,
		&p.HasGarage, &p.HasPatio, &p.HasRoofGarden, &p.HasPool,
		&p.PriceMXN, &p.MaintenanceFeeMXN,
		&p.NearbyPOIs, &p.Amenities,
		&p.VirtualTourURL, &p.FloorPlanURLs, &p.GCSImageURLs, &p.GCSVideoURLs,
		&p.BuildDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Repository handles property persistence.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new property Repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// List returns every property, newest first.
func (r *Repository) List(ctx context.Context) ([]Property, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+selectColumns+` FROM properties ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	out := []Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return out, nil
}

// Get returns one property by id.
func (r *Repository) Get(ctx context.Context, id int64) (*Property, error) {
	p, err := scanProperty(r.db.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM properties WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// Create inserts p and returns the stored record.
func (r *Repository) Create(ctx context.Context, p *Property) (*Property, error) {
	created, err := scanProperty(r.db.QueryRow(ctx,
		`INSERT INTO properties (`+strings.Join(writableColumns, ", ")+`)
		 VALUES (`+placeholders+`)
		 RETURNING `+selectColumns,
		values(p)...,
	))
	if err != nil {
		return nil, mapWriteError("create property", err)
	}
	return created, nil
}

// Update locks the row, lets apply modify it, and writes it back, all in one
// transaction.
func (r *Repository) Update(ctx context.Context, id int64, apply func(*Property) error) (*Property, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	current, err := scanProperty(tx.QueryRow(ctx,
		`SELECT `+selectColumns+` FROM properties WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock property: %w", err)
	}

	if err := apply(current); err != nil {
		return nil, err
	}

	args := append(values(current), id)
	updated, err := scanProperty(tx.QueryRow(ctx,
		`UPDATE properties
		 SET (`+strings.Join(writableColumns, ", ")+`) = (`+placeholders+`), updated_at = NOW()
		 WHERE id = $`+strconv.Itoa(len(args))+`
		 RETURNING `+selectColumns,
		args...,
	))
	if err != nil {
		return nil, mapWriteError("update property", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return updated, nil
}

// Delete removes a property.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// mapWriteError translates PostgreSQL constraint violations into package errors.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	switch pgErr.Code {
	case "23505":
		return ErrDuplicateListing
	case "23503":
		return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
	case "23514":
		return invalid("value rejected by constraint %s", pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w", op, err)
}
