package property

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulp/panel/internal/middleware"
)

type fakeStore struct {
	rows   map[int64]*Property
	nextID int64
	clock  time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[int64]*Property{}, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeStore) List(ctx context.Context) ([]Property, error) {
	out := []Property{}
	for id := f.nextID; id > 0; id-- {
		if p, ok := f.rows[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, id int64) (*Property, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) check(p *Property) error {
	if p.DevelopmentID != nil && *p.DevelopmentID == 999 {
		return ErrInvalidReference
	}
	if p.ListingID == nil {
		return nil
	}
	for _, other := range f.rows {
		if other.ID != p.ID && other.ListingID != nil && *other.ListingID == *p.ListingID {
			return ErrDuplicateListing
		}
	}
	return nil
}

func (f *fakeStore) Create(ctx context.Context, p *Property) (*Property, error) {
	if err := f.check(p); err != nil {
		return nil, err
	}
	f.nextID++
	f.clock = f.clock.Add(time.Minute)
	cp := *p
	cp.ID, cp.CreatedAt, cp.UpdatedAt = f.nextID, f.clock, f.clock
	f.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeStore) Update(ctx context.Context, id int64, apply func(*Property) error) (*Property, error) {
	current, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(current); err != nil {
		return nil, err
	}
	if err := f.check(current); err != nil {
		return nil, err
	}
	f.clock = f.clock.Add(time.Minute)
	current.UpdatedAt = f.clock
	f.rows[id] = current
	out := *current
	return &out, nil
}

func (f *fakeStore) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func newTestRouter() (http.Handler, *fakeStore) {
	store := newFakeStore()
	h := NewHandler(NewService(store), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.MethodNotAllowed(middleware.MethodNotAllowed(r))
	r.Route("/api/properties", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r, store
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, rd)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestValidate(t *testing.T) {
	base := func() *Property {
		p := &Property{PropertyName: "Casa", PriceMXN: 100}
		p.applyDefaults()
		return p
	}
	lat := 91.0

	tests := []struct {
		name   string
		mutate func(p *Property)
		ok     bool
	}{
		{"defaults", func(p *Property) {}, true},
		{"missing name", func(p *Property) { p.PropertyName = " " }, false},
		{"zero price", func(p *Property) { p.PriceMXN = 0 }, false},
		{"negative price", func(p *Property) { p.PriceMXN = -1 }, false},
		{"bad type", func(p *Property) { p.PropertyType = "castle" }, false},
		{"bad status", func(p *Property) { p.PropertyStatus = "ruin" }, false},
		{"bad listing status", func(p *Property) { p.ListingStatus = "hidden" }, false},
		{"bad poi", func(p *Property) { p.NearbyPOIs = []PlaceOfInterest{{Name: "X", Type: "zoo"}} }, false},
		{"good poi", func(p *Property) {
			p.NearbyPOIs = []PlaceOfInterest{{Name: "Hospital Ángeles", Type: "hospital", DistanceKm: 1.2}}
		}, true},
		{"bad latitude", func(p *Property) { p.LocationLat = &lat }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(p)
			err := p.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateProperty(t *testing.T) {
	r, _ := newTestRouter()

	w := do(t, r, http.MethodPost, "/api/properties",
		`{"property_name":"Casa de Lujo","price_mxn":4500000,"listing_id":"ULP-1","build_date":"2024-05-01",
		  "gcs_image_urls":["prop-1/a.png"],"property_amenities_json":{"private_pool":true}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	p := decode[Property](t, w)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "house", p.PropertyType)
	assert.Equal(t, "new", p.PropertyStatus)
	assert.Equal(t, "draft", p.ListingStatus)
	assert.Equal(t, []string{"prop-1/a.png"}, p.GCSImageURLs)
	assert.True(t, p.BuildDate.Valid)
	assert.Equal(t, 2024, p.BuildDate.Time.Year())

	w = do(t, r, http.MethodPost, "/api/properties", `{"property_name":"Otra","price_mxn":1,"listing_id":"ULP-1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"A property with this Listing ID already exists."}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/properties", `{"property_name":"Otra","price_mxn":1,"development_id":999}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/properties", `{"property_name":"Sin precio"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Property Name and Price are required."}`, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/properties", `{"property_name":"X","price_mxn":1,"colour":"red"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListNewestFirst(t *testing.T) {
	r, _ := newTestRouter()
	for _, name := range []string{"first", "second", "third"} {
		w := do(t, r, http.MethodPost, "/api/properties", `{"property_name":"`+name+`","price_mxn":1}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/properties", "")
	require.Equal(t, http.StatusOK, w.Code)
	props := decode[[]Property](t, w)
	require.Len(t, props, 3)
	assert.Equal(t, "third", props[0].PropertyName)
	assert.Equal(t, "first", props[2].PropertyName)
}

func TestGetProperty(t *testing.T) {
	r, _ := newTestRouter()
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/properties", `{"property_name":"A","price_mxn":1}`).Code)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/properties/1", "").Code)

	w := do(t, r, http.MethodGet, "/api/properties/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid property ID."}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/properties/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Property not found."}`, w.Body.String())
}

func TestUpdateMergesFields(t *testing.T) {
	r, _ := newTestRouter()
	w := do(t, r, http.MethodPost, "/api/properties",
		`{"property_name":"Casa","price_mxn":100,"city":"Querétaro","bedrooms":3,
		  "property_amenities_json":{"private_pool":true,"kitchen_finish":"granite"}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[Property](t, w)

	w = do(t, r, http.MethodPut, "/api/properties/1",
		`{"id":55,"price_mxn":200,"gcs_image_urls":["prop-1/b.png"],"property_amenities_json":{"kitchen_finish":"marble"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[Property](t, w)

	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Casa", updated.PropertyName)
	assert.Equal(t, "Querétaro", updated.City)
	require.NotNil(t, updated.Bedrooms)
	assert.Equal(t, int32(3), *updated.Bedrooms)
	assert.Equal(t, 200.0, updated.PriceMXN)
	assert.Equal(t, []string{"prop-1/b.png"}, updated.GCSImageURLs)
	assert.Equal(t, map[string]any{"kitchen_finish": "marble"}, updated.Amenities)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateRejections(t *testing.T) {
	r, _ := newTestRouter()
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/properties", `{"property_name":"A","price_mxn":1}`).Code)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPut, "/api/properties/9", `{"price_mxn":2}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/api/properties/x", `{"price_mxn":2}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/api/properties/1", `[1,2]`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/api/properties/1", `{"listing_status":"gone"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/api/properties/1", `{"property_name":""}`).Code)
}

func TestDeleteProperty(t *testing.T) {
	r, _ := newTestRouter()
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/properties", `{"property_name":"A","price_mxn":1}`).Code)

	w := do(t, r, http.MethodDelete, "/api/properties/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Property 1 deleted successfully."}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, "/api/properties/1", "").Code)
}

func TestPropertyMethodNotAllowed(t *testing.T) {
	r, _ := newTestRouter()

	w := do(t, r, http.MethodPatch, "/api/properties/1", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, PUT, DELETE", w.Header().Get("Allow"))

	w = do(t, r, http.MethodDelete, "/api/properties", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, POST", w.Header().Get("Allow"))
}

func TestColumnBindingsLineUp(t *testing.T) {
	assert.Len(t, values(&Property{}), len(writableColumns))
	assert.Equal(t, "$1, $2, $3", placeholderList(3))
}
