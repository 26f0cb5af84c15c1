package development

import (
	"bytes"
	"context"
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
	rows []Development
}

func (f *fakeStore) List(ctx context.Context) ([]Development, error) {
	return append([]Development{}, f.rows...), nil
}

func (f *fakeStore) Get(ctx context.Context, id int64) (*Development, error) {
	for _, d := range f.rows {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) Create(ctx context.Context, d *Development) (*Development, error) {
	for _, existing := range f.rows {
		if existing.Name == d.Name {
			return nil, ErrAlreadyExists
		}
	}
	d.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *d)
	return d, nil
}

func newTestRouter() http.Handler {
	h := NewHandler(NewService(&fakeStore{}), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Get("/api/developments", h.List)
	r.Post("/api/developments", h.Create)
	r.Get("/api/developments/{id}", h.Get)
	return r
}

func TestDevelopmentEndpoints(t *testing.T) {
	r := newTestRouter()
	serve := func(method, target, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, target, bytes.NewBufferString(body)))
		return w
	}

	w := serve(http.MethodPost, "/api/developments", `{"name":" Altozano ","city":"Querétaro","common_amenities_json":{"clubhouse":true}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Altozano"`)

	assert.Equal(t, http.StatusConflict, serve(http.MethodPost, "/api/developments", `{"name":"Altozano"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodPost, "/api/developments", `{"name":"  "}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodPost, "/api/developments", `nope`).Code)

	w = serve(http.MethodGet, "/api/developments", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "clubhouse")

	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/api/developments/1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodGet, "/api/developments/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodGet, "/api/developments/x", "").Code)
}
