package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/infra/integration/supabase"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
)

type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
}

type LeadMailer interface {
	SendLeadNotification(to string, data mail.LeadNotificationData) error
}

type AuthProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error)
}
