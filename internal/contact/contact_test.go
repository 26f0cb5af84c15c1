package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	rows []Contact
}

func (f *fakeStore) List(ctx context.Context, contactType string) ([]Contact, error) {
	out := []Contact{}
	for _, c := range f.rows {
		if contactType == "" || c.ContactType == contactType {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, id int64) (*Contact, error) {
	for _, c := range f.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) Create(ctx context.Context, c *Contact) (*Contact, error) {
	c.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *c)
	return c, nil
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakeStore{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &Contact{FullName: "Jorge", ContactType: TypeBuilder})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, &Contact{FullName: " ", ContactType: TypeBuilder})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create(ctx, &Contact{FullName: "Jorge", ContactType: "landlord"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestContactEndpoints(t *testing.T) {
	h := NewHandler(NewService(&fakeStore{}), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Get("/api/contacts", h.List)
	r.Post("/api/contacts", h.Create)
	r.Get("/api/contacts/{id}", h.Get)

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, target, bytes.NewBufferString(body)))
		return w
	}

	require.Equal(t, http.StatusCreated, serve(http.MethodPost, "/api/contacts", `{"full_name":"Jorge","contact_type":"builder"}`).Code)
	require.Equal(t, http.StatusCreated, serve(http.MethodPost, "/api/contacts", `{"full_name":"Lucía","contact_type":"closing_partner"}`).Code)

	w := serve(http.MethodPost, "/api/contacts", `{"full_name":"Sin tipo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"contact_type must be one of: builder, sourcing_agent, closing_partner"}`, w.Body.String())

	w = serve(http.MethodGet, "/api/contacts?type=builder", "")
	require.Equal(t, http.StatusOK, w.Code)
	var builders []Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &builders))
	require.Len(t, builders, 1)
	assert.Equal(t, "Jorge", builders[0].FullName)

	assert.Equal(t, http.StatusBadRequest, serve(http.MethodGet, "/api/contacts?type=alien", "").Code)
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/contacts/2", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodGet, "/api/contacts/3", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodGet, "/api/contacts/x", "").Code)
}
