package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-crm/internal/usecase"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeUseCaseError maps use case errors to a status and a message safe to
// return. Anything unrecognised becomes a generic 500.
func writeUseCaseError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var de *usecase.DomainError
	var te *usecase.TechnicalError
	switch {
	case errors.As(err, &de):
		message = de.Message
		status = http.StatusBadRequest
		if de.Code == usecase.CodeInvalidCredentials {
			status = http.StatusUnauthorized
		}
	case errors.As(err, &te):
		message = te.Message
		switch te.Code {
		case usecase.CodeSMSDispatchFailed, usecase.CodeAuthUnavailable:
			status = http.StatusBadGateway
		}
	}

	writeError(w, status, message)
}
