package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ulp/panel/internal/response"
)

// Handler holds HTTP handlers for contact endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new contact Handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("component", "contact")}
}

// List godoc
//
//	@Summary	List contacts
//	@Tags		contacts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		type	query		string	false	"builder, sourcing_agent or closing_partner"
//	@Success	200		{array}		Contact
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	401		{object}	response.ErrorBody
//	@Router		/contacts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	response.OK(w, cs)
}

// Get godoc
//
//	@Summary	Get contact
//	@Tags		contacts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Contact ID"
//	@Success	200	{object}	Contact
//	@Failure	400	{object}	response.ErrorBody
//	@Failure	404	{object}	response.ErrorBody
//	@Router		/contacts/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid contact ID.")
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	response.OK(w, c)
}

// Create godoc
//
//	@Summary	Create contact
//	@Tags		contacts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		Contact	true	"Contact"
//	@Success	201		{object}	Contact
//	@Failure	400		{object}	response.ErrorBody
//	@Router		/contacts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var c Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), &c)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	response.Created(w, created)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalid):
		response.BadRequest(w, strings.TrimPrefix(err.Error(), ErrInvalid.Error()+": "))
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Contact not found.")
	default:
		h.log.Error(op+" contact failed", "error", err)
		response.InternalError(w)
	}
}
