// Package property manages listing records: the properties the panel
// publishes, their media references and their links to developments and
// contacts.
package property

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Allowed enum values.
var (
	PropertyTypes    = []string{"house", "townhouse", "department", "lot"}
	PropertyStatuses = []string{"new", "pre_owned", "pre_sale"}
	ListingStatuses  = []string{"available", "pending", "sold", "draft"}
	POITypes         = []string{"university", "hospital", "shopping_center", "workplace", "other"}
)

// PlaceOfInterest is one entry of nearby_pois_json.
type PlaceOfInterest struct {
	Name       string  `json:"name"        example:"Tec de Monterrey"`
	Type       string  `json:"type"        example:"university"`
	DistanceKm float64 `json:"distance_km" example:"2.5"`
}

// Property mirrors a row of the properties table.
type Property struct {
	ID        int64   `json:"id"         example:"7"`
	ListingID *string `json:"listing_id" example:"ULP-0007"`

	DevelopmentID     *int64 `json:"development_id"`
	BuilderContactID  *int64 `json:"builder_contact_id"`
	SourcingContactID *int64 `json:"sourcing_contact_id"`

	PropertyName   string  `json:"property_name"   example:"Casa de Lujo"`
	Description    *string `json:"description"`
	PropertyType   string  `json:"property_type"   example:"house"`
	PropertyStatus string  `json:"property_status" example:"new"`
	ListingStatus  string  `json:"listing_status"  example:"draft"`

	Address            *string  `json:"address"`
	City               string   `json:"city" example:"Querétaro"`
	LocationZone       *string  `json:"location_zone"`
	LocationLat        *float64 `json:"location_lat"`
	LocationLon        *float64 `json:"location_lon"`
	IsInGatedCommunity bool     `json:"is_in_gated_community"`

	LotAreaSqMeters          *float64 `json:"lot_area_sq_meters"`
	ConstructionAreaSqMeters *float64 `json:"construction_area_sq_meters"`
	Stories                  *int32   `json:"stories"`
	Bedrooms                 *int32   `json:"bedrooms"`
	Bathrooms                *float64 `json:"bathrooms"`
	Studio                   bool     `json:"studio"`
	ParkingSlots             *int32   `json:"parking_slots"`

	HasGarage     bool `json:"has_garage"`
	HasPatio      bool `json:"has_patio"`
	HasRoofGarden bool `json:"has_roof_garden"`
	HasPool       bool `json:"has_pool"`

	PriceMXN          float64  `json:"price_mxn" example:"4500000"`
	MaintenanceFeeMXN *float64 `json:"maintenance_fee_mxn"`

	NearbyPOIs []PlaceOfInterest `json:"nearby_pois_json"`
	Amenities  map[string]any    `json:"property_amenities_json" swaggertype:"object"`

	VirtualTourURL *string  `json:"virtual_tour_url"`
	FloorPlanURLs  []string `json:"floor_plan_urls"`
	GCSImageURLs   []string `json:"gcs_image_urls"`
	GCSVideoURLs   []string `json:"gcs_video_urls"`

	BuildDate pgtype.Date `json:"build_date" swaggertype:"string" example:"2024-05-01"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// ErrNotFound is returned when a property does not exist.
var ErrNotFound = errors.New("property not found")

// ErrDuplicateListing is returned when listing_id is already taken.
var ErrDuplicateListing = errors.New("duplicate listing id")

// ErrInvalidReference is returned when a development or contact id does not exist.
var ErrInvalidReference = errors.New("referenced record does not exist")

// ValidationError describes a rejected property payload.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// applyDefaults fills the enum fields a new record may omit.
func (p *Property) applyDefaults() {
	if p.PropertyType == "" {
		p.PropertyType = "house"
	}
	if p.PropertyStatus == "" {
		p.PropertyStatus = "new"
	}
	if p.ListingStatus == "" {
		p.ListingStatus = "draft"
	}
}

// Validate checks required fields and enum membership.
func (p *Property) Validate() error {
	if strings.TrimSpace(p.PropertyName) == "" || p.PriceMXN == 0 {
		return invalid("Property Name and Price are required.")
	}
	if p.PriceMXN < 0 {
		return invalid("price_mxn must be positive")
	}
	if err := oneOf("property_type", p.PropertyType, PropertyTypes); err != nil {
		return err
	}
	if err := oneOf("property_status", p.PropertyStatus, PropertyStatuses); err != nil {
		return err
	}
	if err := oneOf("listing_status", p.ListingStatus, ListingStatuses); err != nil {
		return err
	}
	for i, poi := range p.NearbyPOIs {
		if poi.Name == "" {
			return invalid("nearby_pois_json[%d].name is required", i)
		}
		if err := oneOf(fmt.Sprintf("nearby_pois_json[%d].type", i), poi.Type, POITypes); err != nil {
			return err
		}
		if poi.DistanceKm < 0 {
			return invalid("nearby_pois_json[%d].distance_km must not be negative", i)
		}
	}
	if p.LocationLat != nil && (*p.LocationLat < -90 || *p.LocationLat > 90) {
		return invalid("location_lat must be between -90 and 90")
	}
	if p.LocationLon != nil && (*p.LocationLon < -180 || *p.LocationLon > 180) {
		return invalid("location_lon must be between -180 and 180")
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return invalid("%s must be one of: %s", field, strings.Join(allowed, ", "))
}
