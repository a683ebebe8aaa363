package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type EmailHandler struct {
	Repo entity.EmailRepositoryInterface
}

func NewEmailHandler(repo entity.EmailRepositoryInterface) *EmailHandler {
	return &EmailHandler{Repo: repo}
}

type BulkUpdateRequest struct {
	IDs     json.RawMessage `json:"ids"`
	Updates json.RawMessage `json:"updates"`
}

type BulkUpdateResponse struct {
	Success bool `json:"success"`
	entity.BulkUpdateResult
}

// Get (GET /api/emails/{id})
func (h *EmailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.Repo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Email not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("fetch email failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch email")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Update (PUT /api/emails/{id}) applies the whitelisted fields of the body.
func (h *EmailHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.Repo.Update(r.Context(), id, entity.NewEmailUpdate(body))
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Email not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("update email failed")
		writeError(w, http.StatusInternalServerError, "Failed to update email")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "Email updated successfully"})
}

// Delete (DELETE /api/emails/{id})
func (h *EmailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Repo.Delete(r.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Email not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("delete email failed")
		writeError(w, http.StatusInternalServerError, "Failed to delete email")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "Email deleted successfully"})
}

// BulkUpdate (PUT /api/emails/bulk-update)
func (h *EmailHandler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req BulkUpdateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var ids []string
	if err := json.Unmarshal(req.IDs, &ids); err != nil || len(ids) == 0 {
		writeError(w, http.StatusBadRequest, "Missing or invalid ids array")
		return
	}

	var fields map[string]any
	if err := json.Unmarshal(req.Updates, &fields); err != nil || fields == nil {
		writeError(w, http.StatusBadRequest, "Missing or invalid updates object")
		return
	}

	res, err := h.Repo.BulkUpdate(r.Context(), ids, entity.NewEmailUpdate(fields))
	if err != nil {
		log.Error().Err(err).Int("count", len(ids)).Msg("bulk update failed")
		writeError(w, http.StatusInternalServerError, "Failed to update emails")
		return
	}

	writeJSON(w, http.StatusOK, BulkUpdateResponse{Success: true, BulkUpdateResult: res})
}
