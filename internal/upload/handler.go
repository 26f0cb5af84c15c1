package upload

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ulp/panel/internal/response"
)

// Handler holds HTTP handlers for upload and media endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler creates a new upload Handler.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("component", "upload")}
}

type generateUploadURLRequest struct {
	FileName    string `json:"fileName"    example:"main-facade.jpg"`
	ContentType string `json:"contentType" example:"image/jpeg"`
	Directory   string `json:"directory"   example:"property-123-Casa-de-Lujo"`
}

type generateUploadURLData struct {
	UploadURL  string `json:"uploadUrl"  example:"https://storage.googleapis.com/ulp-assets/property-123-Casa-de-Lujo/main-facade.jpg?X-Amz-Signature=..."`
	ObjectPath string `json:"objectPath" example:"property-123-Casa-de-Lujo/main-facade.jpg"`
	ExpiresAt  string `json:"expiresAt"  example:"2026-10-14T09:15:00Z"`
}

type listFilesData struct {
	Files []string `json:"files"`
}

// GenerateUploadURL godoc
//
//	@Summary		Generate upload URL
//	@Description	Sanitizes directory and file name into an object path and returns a 15-minute signed PUT URL bound to the given content type. The client uploads directly to the store and then saves objectPath on the property.
//	@Tags			gcs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		generateUploadURLRequest	true	"File to upload"
//	@Success		200		{object}	generateUploadURLData
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		405		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/gcs/generate-upload-url [post]
func (h *Handler) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req generateUploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.FileName == "" || req.ContentType == "" || req.Directory == "" {
		response.BadRequest(w, "Missing required fields. fileName, contentType, and directory are required.")
		return
	}

	objectPath := h.svc.Sanitize(req.Directory, req.FileName)

	grant, err := h.svc.IssueUploadGrant(r.Context(), objectPath, req.ContentType)
	if errors.Is(err, ErrContentTypeNotAllowed) {
		response.BadRequest(w, fmt.Sprintf("Content type %q is not accepted.", req.ContentType))
		return
	}
	if err != nil {
		h.log.Error("generate upload url failed", "objectPath", objectPath, "error", err)
		response.InternalErrorMessage(w, "Failed to generate upload URL.")
		return
	}

	response.OK(w, grant)
}

// ListFiles godoc
//
//	@Summary		List files
//	@Description	Lists the public URLs of every object whose key starts with prefix, in store order.
//	@Tags			gcs
//	@Produce		json
//	@Security		BearerAuth
//	@Param			prefix	query		string	true	"Key prefix, usually a directory plus trailing slash"
//	@Success		200		{object}	listFilesData
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		401		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/gcs/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		response.BadRequest(w, "prefix query parameter is required")
		return
	}

	urls, err := h.svc.ListByPrefix(r.Context(), prefix)
	if err != nil {
		h.log.Error("list files failed", "prefix", prefix, "error", err)
		response.InternalErrorMessage(w, "Failed to list files.")
		return
	}

	response.OK(w, listFilesData{Files: urls})
}

// DeleteFile godoc
//
//	@Summary		Delete file
//	@Description	Deletes a single object. Deleting a key that does not exist returns 404.
//	@Tags			gcs
//	@Produce		json
//	@Security		BearerAuth
//	@Param			objectPath	query		string	true	"Object key"
//	@Success		200			{object}	response.MessageBody
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		404			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/gcs/files [delete]
func (h *Handler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	objectPath := r.URL.Query().Get("objectPath")
	if objectPath == "" {
		response.BadRequest(w, "objectPath query parameter is required")
		return
	}

	err := h.svc.DeleteObject(r.Context(), objectPath)
	if h.svc.IsNotFound(err) {
		response.NotFound(w, "File not found.")
		return
	}
	if err != nil {
		h.log.Error("delete file failed", "objectPath", objectPath, "error", err)
		response.InternalErrorMessage(w, "Failed to delete file.")
		return
	}

	response.Message(w, fmt.Sprintf("File %s deleted successfully.", objectPath))
}
