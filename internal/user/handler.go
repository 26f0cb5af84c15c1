package user

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ulp/panel/internal/middleware"
	"github.com/ulp/panel/internal/response"
)

// Handler holds HTTP handlers for user-related endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new user Handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("component", "user")}
}

// GetMe godoc
//
//	@Summary		Get current user
//	@Description	Returns the profile of the currently authenticated user.
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	User
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/users/me [get]
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	u, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "user not found")
			return
		}
		h.log.Error("get user failed", "id", id, "error", err)
		response.InternalError(w)
		return
	}

	response.OK(w, u)
}
