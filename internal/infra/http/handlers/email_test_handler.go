package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
)

type TestMailer interface {
	Configured() bool
	SendTest() (string, error)
}

type EmailTestHandler struct {
	Mailer TestMailer
}

func NewEmailTestHandler(mailer TestMailer) *EmailTestHandler {
	return &EmailTestHandler{Mailer: mailer}
}

type EmailTestResponse struct {
	Success    bool   `json:"success"`
	Configured bool   `json:"configured"`
	Message    string `json:"message"`
}

// Status (GET /api/email-test) only reports configuration.
func (h *EmailTestHandler) Status(w http.ResponseWriter, r *http.Request) {
	configured := h.Mailer.Configured()
	message := "SMTP credentials are configured"
	if !configured {
		message = "SMTP credentials are not configured"
	}

	writeJSON(w, http.StatusOK, EmailTestResponse{
		Success:    configured,
		Configured: configured,
		Message:    message,
	})
}

// Send (POST /api/email-test) mails a test message to the SMTP account.
func (h *EmailTestHandler) Send(w http.ResponseWriter, r *http.Request) {
	if !h.Mailer.Configured() {
		writeJSON(w, http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: "SMTP credentials are not configured",
		})
		return
	}

	to, err := h.Mailer.SendTest()
	if err != nil {
		log.Error().Err(err).Msg("test email failed")
		middleware.RecordIntegrationError("smtp")
		writeJSON(w, http.StatusInternalServerError, StatusResponse{
			Success: false,
			Message: "Failed to send test email",
		})
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: "Test email sent to " + to,
	})
}
