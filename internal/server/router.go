// Package server assembles the HTTP router.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/ulp/panel/internal/auth"
	"github.com/ulp/panel/internal/contact"
	"github.com/ulp/panel/internal/development"
	appMiddleware "github.com/ulp/panel/internal/middleware"
	"github.com/ulp/panel/internal/property"
	"github.com/ulp/panel/internal/quote"
	"github.com/ulp/panel/internal/upload"
	"github.com/ulp/panel/internal/user"
)

// Handlers are the endpoint groups the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Property    *property.Handler
	Development *development.Handler
	Contact     *contact.Handler
	Upload      *upload.Handler
	Quote       *quote.Handler
}

// Options configures cross-cutting middleware.
type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	LoginLimiter   *appMiddleware.RateLimiter
	Log            *slog.Logger
}

// NewRouter builds the chi router serving the API under /api.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()
	// Set before any Route/Mount so subrouters inherit them.
	r.NotFound(appMiddleware.NotFound)
	r.MethodNotAllowed(appMiddleware.MethodNotAllowed(r))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(opts.Log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	requireAuth := appMiddleware.RequireAuth(opts.JWTSecret)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			login := http.HandlerFunc(h.Auth.Login)
			if opts.LoginLimiter != nil {
				r.Method(http.MethodPost, "/login", opts.LoginLimiter.Handler(login))
			} else {
				r.Method(http.MethodPost, "/login", login)
			}
			r.With(requireAuth).Get("/session", h.Auth.Session)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/users/me", h.User.GetMe)

			r.Route("/properties", func(r chi.Router) {
				r.Get("/", h.Property.List)
				r.Post("/", h.Property.Create)
				r.Get("/{id}", h.Property.Get)
				r.Put("/{id}", h.Property.Update)
				r.Delete("/{id}", h.Property.Delete)
			})

			r.Route("/developments", func(r chi.Router) {
				r.Get("/", h.Development.List)
				r.Post("/", h.Development.Create)
				r.Get("/{id}", h.Development.Get)
			})

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.Contact.List)
				r.Post("/", h.Contact.Create)
				r.Get("/{id}", h.Contact.Get)
			})

			r.Route("/gcs", func(r chi.Router) {
				r.Post("/generate-upload-url", h.Upload.GenerateUploadURL)
				r.Get("/files", h.Upload.ListFiles)
				r.Delete("/files", h.Upload.DeleteFile)
			})

			r.Route("/quotes", func(r chi.Router) {
				r.Get("/catalog", h.Quote.GetCatalog)
				r.Post("/", h.Quote.Create)
			})
		})
	})

	return r
}
