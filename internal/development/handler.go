package development

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ulp/panel/internal/response"
)

// Handler holds HTTP handlers for development endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new development Handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("component", "development")}
}

// List godoc
//
//	@Summary	List developments
//	@Tags		developments
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		Development
//	@Failure	401	{object}	response.ErrorBody
//	@Failure	500	{object}	response.ErrorBody
//	@Router		/developments [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("list developments failed", "error", err)
		response.InternalError(w)
		return
	}
	response.OK(w, ds)
}

// Get godoc
//
//	@Summary	Get development
//	@Tags		developments
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Development ID"
//	@Success	200	{object}	Development
//	@Failure	400	{object}	response.ErrorBody
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/developments/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid development ID.")
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, "Development not found.")
		return
	}
	if err != nil {
		h.log.Error("get development failed", "id", id, "error", err)
		response.InternalError(w)
		return
	}
	response.OK(w, d)
}

// Create godoc
//
//	@Summary	Create development
//	@Tags		developments
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		Development	true	"Development"
//	@Success	201		{object}	Development
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	409		{object}	response.ErrorBody
//	@Router		/developments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var d Development
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), &d)
	switch {
	case errors.Is(err, ErrNameRequired):
		response.BadRequest(w, "Development name is required.")
	case errors.Is(err, ErrAlreadyExists):
		response.Conflict(w, "A development with this name already exists.")
	case err != nil:
		h.log.Error("create development failed", "error", err)
		response.InternalErrorMessage(w, "Failed to create development.")
	default:
		response.Created(w, created)
	}
}
