package quote

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidQuote is wrapped by every rejection Build returns.
var ErrInvalidQuote = errors.New("invalid quote")

const (
	defaultSuite   = "enterprise"
	defaultSegment = "AAA"
)

// Customer identifies who the quote is for.
type Customer struct {
	OpportunityID string `json:"opportunityId" example:"OPP-2026-118"`
	CustomerName  string `json:"customerName"  example:"Grupo Bajío"`
	ContactName   string `json:"contactName"   example:"Lucía Herrera"`
	Industry      string `json:"industry"      example:"Retail"`
	Segment       string `json:"segment"       example:"AAA"`
}

// ModuleSelection asks for a module with extra licenses on top of the included ones.
type ModuleSelection struct {
	Code               string `json:"code"               example:"Acc"`
	AdditionalLicenses int    `json:"additionalLicenses" example:"3"`
}

// Request is the input to Build.
type Request struct {
	Customer Customer          `json:"customer"`
	SuiteID  string            `json:"suiteId" example:"enterprise"`
	Modules  []ModuleSelection `json:"modules"`
	AddOns   []string          `json:"addOns"`
}

// ModuleLine is a resolved module on a quote.
type ModuleLine struct {
	BaseModule
	AdditionalLicenses int `json:"additionalLicenses"`
	TotalLicenses      int `json:"totalLicenses"`
}

// Quote is an evaluated, priced-by-license quote.
type Quote struct {
	ID            string       `json:"id"         example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
	PreparedBy    string       `json:"preparedBy" example:"admin@ulp.mx"`
	CreatedAt     time.Time    `json:"createdAt"`
	Customer      Customer     `json:"customer"`
	SuiteID       string       `json:"suiteId"`
	Modules       []ModuleLine `json:"modules"`
	AddOns        []AddOn      `json:"addOns"`
	TotalLicenses int          `json:"totalLicenses"`
	AddOnLicenses int          `json:"addOnLicenses"`
}

// Service builds quotes from a catalog.
type Service struct {
	catalog Catalog
	now     func() time.Time
	newID   func() string
}

// NewService creates a quote Service over catalog.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog, now: time.Now, newID: func() string { return uuid.NewString() }}
}

// Catalog returns the catalog quotes are built from.
func (s *Service) Catalog() Catalog {
	return s.catalog
}

func reject(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuote, fmt.Sprintf(format, args...))
}

// Build validates req and resolves it into a Quote. Mandatory modules are
// always included; every module and add-on dependency must be selected.
func (s *Service) Build(req Request, preparedBy string) (*Quote, error) {
	c := req.Customer
	c.CustomerName = strings.TrimSpace(c.CustomerName)
	c.ContactName = strings.TrimSpace(c.ContactName)
	if c.CustomerName == "" || c.ContactName == "" {
		return nil, reject("customerName and contactName are required")
	}
	if c.Segment == "" {
		c.Segment = defaultSegment
	}
	suite := req.SuiteID
	if suite == "" {
		suite = defaultSuite
	}

	additional := map[string]int{}
	for _, sel := range req.Modules {
		if _, ok := s.catalog.module(sel.Code); !ok {
			return nil, reject("unknown module %q", sel.Code)
		}
		if _, dup := additional[sel.Code]; dup {
			return nil, reject("module %q selected twice", sel.Code)
		}
		if sel.AdditionalLicenses < 0 {
			return nil, reject("additionalLicenses for %q must not be negative", sel.Code)
		}
		additional[sel.Code] = sel.AdditionalLicenses
	}
	for _, m := range s.catalog.Modules {
		if _, ok := additional[m.Code]; !ok && m.Mandatory {
			additional[m.Code] = 0
		}
	}

	q := &Quote{
		ID:         s.newID(),
		PreparedBy: preparedBy,
		CreatedAt:  s.now().UTC(),
		Customer:   c,
		SuiteID:    suite,
		Modules:    []ModuleLine{},
		AddOns:     []AddOn{},
	}

	// Lines follow catalog order.
	for _, m := range s.catalog.Modules {
		extra, ok := additional[m.Code]
		if !ok {
			continue
		}
		for _, dep := range m.DependsOn {
			if _, ok := additional[dep]; !ok {
				return nil, reject("module %q requires %q", m.Code, dep)
			}
		}
		line := ModuleLine{BaseModule: m, AdditionalLicenses: extra, TotalLicenses: m.IncludedLicenses + extra}
		q.Modules = append(q.Modules, line)
		q.TotalLicenses += line.TotalLicenses
	}

	seen := map[string]bool{}
	for _, code := range req.AddOns {
		a, ok := s.catalog.addOn(code)
		if !ok {
			return nil, reject("unknown add-on %q", code)
		}
		if seen[code] {
			return nil, reject("add-on %q selected twice", code)
		}
		seen[code] = true
		for _, dep := range a.DependsOn {
			if _, ok := additional[dep]; !ok {
				return nil, reject("add-on %q requires %q", code, dep)
			}
		}
		q.AddOns = append(q.AddOns, a)
		q.AddOnLicenses += a.RequiredLicenses
	}

	return q, nil
}
