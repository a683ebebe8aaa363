package usecase

import (
	"encoding/json"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type NotifyLeadInterestInput struct {
	Lead            entity.LeadContact `json:"lead"`
	PropertyDetails string             `json:"propertyDetails"`

	// Raw is the request body as received, forwarded to the admin for diagnostics.
	Raw json.RawMessage `json:"-"`
}

type NotifyLeadInterestOutput struct {
	Reference      string
	SMSSid         string
	AdminNotified  bool
	EventPublished bool
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionInfo struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type LoginOutput struct {
	User    entity.UserInfo `json:"user"`
	Session SessionInfo     `json:"session"`
}
