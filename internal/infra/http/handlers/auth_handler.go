package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type Authenticator interface {
	Execute(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)
}

type AuthHandler struct {
	auth        Authenticator
	rateLimiter *RateLimiter
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{
		auth:        auth,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

// Login (POST /api/auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		middleware.RecordLogin("rate_limited")
		writeError(w, http.StatusTooManyRequests, "Too many requests")
		return
	}

	var input usecase.LoginInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	out, err := h.auth.Execute(r.Context(), input)
	if err != nil {
		switch usecase.ErrorCode(err) {
		case usecase.CodeInvalidCredentials:
			middleware.RecordLogin("invalid_credentials")
		case usecase.CodeAuthUnavailable:
			middleware.RecordLogin("error")
			middleware.RecordIntegrationError("supabase")
		case usecase.CodeInvalidInput:
			middleware.RecordLogin("invalid")
		case usecase.CodeMisconfigured:
			middleware.RecordLogin("misconfigured")
		default:
			middleware.RecordLogin("error")
		}
		if usecase.IsTechnicalError(err) {
			log.Error().Err(err).Msg("login failed")
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordLogin("success")
	writeJSON(w, http.StatusOK, out)
}
