package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type LeadNotifier interface {
	CheckConfig() error
	Execute(ctx context.Context, input usecase.NotifyLeadInterestInput) (*usecase.NotifyLeadInterestOutput, error)
}

type LeadHandler struct {
	notifier    LeadNotifier
	rateLimiter *RateLimiter
}

func NewLeadHandler(notifier LeadNotifier) *LeadHandler {
	return &LeadHandler{
		notifier:    notifier,
		rateLimiter: NewRateLimiter(30, time.Minute),
	}
}

// NotifyInterest (POST /api/leads/interested)
func (h *LeadHandler) NotifyInterest(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests")
		return
	}

	if err := h.notifier.CheckConfig(); err != nil {
		log.Error().Err(err).Msg("lead notification misconfigured")
		middleware.RecordLeadNotification("misconfigured")
		writeUseCaseError(w, err)
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var input usecase.NotifyLeadInterestInput
	if err := json.Unmarshal(raw, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	input.Raw = raw

	out, err := h.notifier.Execute(r.Context(), input)
	if err != nil {
		switch usecase.ErrorCode(err) {
		case usecase.CodeInvalidInput:
			middleware.RecordLeadNotification("invalid")
		case usecase.CodeSMSDispatchFailed:
			middleware.RecordLeadNotification("sms_failed")
			middleware.RecordIntegrationError("twilio")
		default:
			middleware.RecordLeadNotification("error")
		}
		if usecase.IsTechnicalError(err) {
			log.Error().Err(err).Msg("lead notification failed")
		}
		writeUseCaseError(w, err)
		return
	}

	if !out.AdminNotified {
		middleware.RecordIntegrationError("smtp")
	}
	middleware.RecordLeadNotification("sent")
	log.Info().
		Str("reference", out.Reference).
		Bool("admin_notified", out.AdminNotified).
		Bool("event_published", out.EventPublished).
		Msg("lead notified")

	writeJSON(w, http.StatusOK, StatusResponse{Success: true})
}
