package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func validClaims() Claims {
	return Claims{
		Email: "admin@ulp.mx",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func protected() http.Handler {
	return RequireAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := ClaimsFrom(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = io.WriteString(w, c.Email)
	}))
}

func TestRequireAuth(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad signature", "Bearer " + signToken(t, "other", validClaims()), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, expired), http.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, testSecret, validClaims()), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protected().ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireAuthInjectsClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	w := httptest.NewRecorder()

	protected().ServeHTTP(w, req)

	assert.Equal(t, "admin@ulp.mx", w.Body.String())
}

func TestMethodNotAllowedReportsAllow(t *testing.T) {
	r := chi.NewRouter()
	r.MethodNotAllowed(MethodNotAllowed(r))
	r.Route("/api/properties", func(r chi.Router) {
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {})
		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/properties/4", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, PUT, DELETE", w.Header().Get("Allow"))
	assert.JSONEq(t, `{"error":"Method POST Not Allowed"}`, w.Body.String())
}

func TestMethodNotAllowedIgnoresMountStubs(t *testing.T) {
	noop := func(w http.ResponseWriter, r *http.Request) {}
	r := chi.NewRouter()
	r.MethodNotAllowed(MethodNotAllowed(r))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler { return next })
			r.Route("/properties", func(r chi.Router) {
				r.Get("/", noop)
				r.Post("/", noop)
				r.Get("/{id}", noop)
				r.Put("/{id}", noop)
				r.Delete("/{id}", noop)
			})
			r.Route("/quotes", func(r chi.Router) {
				r.Get("/catalog", noop)
				r.Post("/", noop)
			})
		})
	})

	for _, tc := range []struct {
		method, target, allow string
	}{
		{http.MethodDelete, "/api/properties", "GET, POST"},
		{http.MethodPatch, "/api/properties/", "GET, POST"},
		{http.MethodPatch, "/api/properties/7", "GET, PUT, DELETE"},
		{http.MethodDelete, "/api/quotes", "POST"},
		{http.MethodPost, "/api/quotes/catalog", "GET"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.target, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, tc.method+" "+tc.target)
		assert.Equal(t, tc.allow, w.Header().Get("Allow"), tc.method+" "+tc.target)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, discardLogger())
	defer rl.Stop()

	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1001").Code)

	limited := do("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000").Code, "other clients keep their own bucket")
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, discardLogger())
	defer rl.Stop()

	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	var (
		wg     sync.WaitGroup
		passed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.RemoteAddr = "10.0.0.9:4000"
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if w.Code == http.StatusOK {
				passed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), passed.Load())
}

func TestLoggerKeepsStatus(t *testing.T) {
	h := Logger(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}
