package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ulp/panel/internal/middleware"
	"github.com/ulp/panel/internal/response"
	"github.com/ulp/panel/internal/user"
)

// Handler holds HTTP handlers for auth endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new auth Handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("component", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"    example:"admin@ulp.mx"`
	Password string `json:"password" example:"s3cret"`
}

type loginData struct {
	Token     string     `json:"token"     example:"eyJhbGci..."`
	ExpiresAt time.Time  `json:"expiresAt" example:"2026-11-13T09:00:00Z"`
	User      *user.User `json:"user"`
}

type sessionUser struct {
	ID    string `json:"id"    example:"1"`
	Email string `json:"email" example:"admin@ulp.mx"`
	Name  string `json:"name"  example:"Ana López"`
	Role  string `json:"role"  example:"admin"`
}

type sessionData struct {
	User    sessionUser `json:"user"`
	Expires time.Time   `json:"expires" example:"2026-11-13T09:00:00Z"`
}

// Login godoc
//
//	@Summary		Sign in
//	@Description	Checks email and password against the stored bcrypt hash and returns a bearer token. Attempts are rate limited per client IP.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Credentials"
//	@Success		200		{object}	loginData
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		429		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, "email and password are required")
		return
	}

	result, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if h.svc.IsInvalidCredentials(err) {
		h.log.Warn("login rejected", "email", req.Email)
		response.Unauthorized(w, "Invalid email or password.")
		return
	}
	if err != nil {
		h.log.Error("login failed", "email", req.Email, "error", err)
		response.InternalError(w)
		return
	}

	response.OK(w, loginData{Token: result.Token, ExpiresAt: result.ExpiresAt, User: result.User})
}

// Session godoc
//
//	@Summary		Current session
//	@Description	Returns the identity carried by the bearer token and when it expires.
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	sessionData
//	@Failure		401	{object}	response.ErrorBody
//	@Router			/auth/session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	data := sessionData{User: sessionUser{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}}
	if claims.ExpiresAt != nil {
		data.Expires = claims.ExpiresAt.Time.UTC()
	}
	response.OK(w, data)
}
