package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/supabase"
)

var invalidCredentials = &DomainError{
	Code:    CodeInvalidCredentials,
	Message: "Invalid email or password",
}

type LoginUseCase struct {
	Auth     AuthProvider
	Profiles entity.ProfileRepositoryInterface
}

func NewLoginUseCase(auth AuthProvider, profiles entity.ProfileRepositoryInterface) *LoginUseCase {
	return &LoginUseCase{Auth: auth, Profiles: profiles}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := ValidateLoginInput(input); err != nil {
		return nil, err
	}

	session, err := uc.Auth.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, supabase.ErrNotConfigured) {
			return nil, &TechnicalError{
				Code:    CodeMisconfigured,
				Message: "Server configuration error",
				Err:     err,
			}
		}
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) && apiErr.Rejected() {
			log.Info().Err(err).Msg("sign-in rejected by auth provider")
			return nil, invalidCredentials
		}
		return nil, &TechnicalError{
			Code:    CodeAuthUnavailable,
			Message: "Authentication service unavailable",
			Err:     err,
		}
	}
	if session == nil || session.User == nil || session.User.ID == "" {
		log.Warn().Msg("auth provider returned no user")
		return nil, invalidCredentials
	}

	profile, err := uc.Profiles.FindByID(ctx, session.User.ID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, &TechnicalError{
			Code:    CodeProfileLookup,
			Message: "Failed to load user profile",
			Err:     err,
		}
	}

	email := session.User.Email
	if email == "" {
		email = input.Email
	}

	return &LoginOutput{
		User: entity.MergeProfile(session.User.ID, email, profile),
		Session: SessionInfo{
			AccessToken:  session.AccessToken,
			RefreshToken: session.RefreshToken,
			TokenType:    session.TokenType,
			ExpiresIn:    session.ExpiresIn,
		},
	}, nil
}
