package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
)

type CallLister interface {
	Configured() bool
	ListCalls(ctx context.Context, rawQuery string) ([]byte, error)
}

type CallHandler struct {
	Calls CallLister
}

func NewCallHandler(calls CallLister) *CallHandler {
	return &CallHandler{Calls: calls}
}

// List (GET /api/vapi/calls) relays the voice platform's call list as is.
func (h *CallHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.Calls.Configured() {
		log.Error().Msg("VAPI_API_KEY not configured")
		writeError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	body, err := h.Calls.ListCalls(r.Context(), r.URL.RawQuery)
	if err != nil {
		log.Error().Err(err).Msg("list calls failed")
		middleware.RecordIntegrationError("vapi")
		writeError(w, http.StatusBadGateway, "Failed to fetch calls")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
