package property

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ulp/panel/internal/response"
)

const maxBodyBytes = 1 << 20

// Handler holds HTTP handlers for property endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new property Handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("component", "property")}
}

// List godoc
//
//	@Summary		List properties
//	@Description	Returns every property, newest first.
//	@Tags			properties
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		Property
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/properties [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	props, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("list properties failed", "error", err)
		response.InternalError(w)
		return
	}
	response.OK(w, props)
}

// Create godoc
//
//	@Summary		Create property
//	@Description	Creates a property. property_name and a non-zero price_mxn are required; property_type, property_status and listing_status default to house, new and draft.
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		Property	true	"Property"
//	@Success		201		{object}	Property
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		409		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/properties [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p Property
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), &p)
	if err != nil {
		h.writeError(w, "create", 0, err)
		return
	}
	response.Created(w, created)
}

// Get godoc
//
//	@Summary		Get property
//	@Tags			properties
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	Property
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/properties/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "get", id, err)
		return
	}
	response.OK(w, p)
}

// Update godoc
//
//	@Summary		Update property
//	@Description	Merges the body onto the stored property. Fields absent from the body are left unchanged.
//	@Tags			properties
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int			true	"Property ID"
//	@Param			request	body		Property	true	"Fields to change"
//	@Success		200		{object}	Property
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		409		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/properties/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), id, body)
	if err != nil {
		h.writeError(w, "update", id, err)
		return
	}
	response.OK(w, p)
}

// Delete godoc
//
//	@Summary		Delete property
//	@Tags			properties
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	response.MessageBody
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/properties/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, "delete", id, err)
		return
	}
	response.Message(w, fmt.Sprintf("Property %d deleted successfully.", id))
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid property ID.")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, op string, id int64, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.BadRequest(w, verr.Msg)
	case h.svc.IsNotFound(err):
		response.NotFound(w, "Property not found.")
	case errors.Is(err, ErrDuplicateListing):
		response.Conflict(w, "A property with this Listing ID already exists.")
	case errors.Is(err, ErrInvalidReference):
		response.BadRequest(w, "Referenced development or contact does not exist.")
	case op == "get":
		h.log.Error("get property failed", "id", id, "error", err)
		response.InternalError(w)
	default:
		h.log.Error(op+" property failed", "id", id, "error", err)
		response.InternalErrorMessage(w, fmt.Sprintf("Failed to %s property.", op))
	}
}
