package user

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ulp/panel/internal/middleware"
)

type fakeStore struct {
	byID   map[int64]*User
	nextID int64
	err    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: map[int64]*User{}}
}

func (f *fakeStore) Create(ctx context.Context, email, fullName, passwordHash, role string) (*User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return nil, ErrAlreadyExists
		}
	}
	f.nextID++
	u := &User{ID: f.nextID, Email: email, FullName: fullName, Role: role, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	svc := NewService(store)
	svc.cost = bcrypt.MinCost
	return svc, store
}

func TestCreateHashesPassword(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Create(context.Background(), " Admin@ULP.mx ", "Ana", "s3cret", RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "admin@ulp.mx", u.Email)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestCreateRejectsDuplicatesAndBadRoles(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "a@ulp.mx", "A", "pw", RoleEditor)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "a@ulp.mx", "A", "pw", RoleEditor)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.Create(ctx, "b@ulp.mx", "B", "pw", "root")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthenticate(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	_, err := svc.Create(ctx, "a@ulp.mx", "A", "correct horse", RoleAdmin)
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "A@ulp.mx", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "a@ulp.mx", u.Email)

	_, err = svc.Authenticate(ctx, "a@ulp.mx", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@ulp.mx", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	store.err = errors.New("connection refused")
	_, err = svc.Authenticate(ctx, "a@ulp.mx", "correct horse")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetMe(t *testing.T) {
	svc, _ := newTestService()
	u, err := svc.Create(context.Background(), "a@ulp.mx", "Ana", "pw", RoleAdmin)
	require.NoError(t, err)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	serve := func(subject string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		if subject != "" {
			claims := &middleware.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}
			req = req.WithContext(middleware.WithClaims(req.Context(), claims))
		}
		w := httptest.NewRecorder()
		h.GetMe(w, req)
		return w
	}

	w := serve(strconv.FormatInt(u.ID, 10))
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "a@ulp.mx", got["email"])
	assert.NotContains(t, got, "passwordHash")
	assert.NotContains(t, w.Body.String(), u.PasswordHash)

	assert.Equal(t, http.StatusNotFound, serve("999").Code)
	assert.Equal(t, http.StatusUnauthorized, serve("not-a-number").Code)
	assert.Equal(t, http.StatusUnauthorized, serve("").Code)
}
