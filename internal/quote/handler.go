package quote

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ulp/panel/internal/middleware"
	"github.com/ulp/panel/internal/response"
)

// Handler holds HTTP handlers for quote endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new quote Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetCatalog godoc
//
//	@Summary	Quote catalog
//	@Tags		quotes
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	Catalog
//	@Router		/quotes/catalog [get]
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.svc.Catalog())
}

// Create godoc
//
//	@Summary		Build quote
//	@Description	Resolves module and add-on selections against the catalog. Mandatory modules are always included and every dependency must be selected.
//	@Tags			quotes
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		Request	true	"Selections"
//	@Success		200		{object}	Quote
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Router			/quotes [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	q, err := h.svc.Build(req, claims.Email)
	if errors.Is(err, ErrInvalidQuote) {
		response.BadRequest(w, strings.TrimPrefix(err.Error(), ErrInvalidQuote.Error()+": "))
		return
	}
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, q)
}
