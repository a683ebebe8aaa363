package entity

import (
	"context"
	"encoding/json"
	"time"
)

// LeadContact is the lead block of an interest event. Only name and phone are
// required; anything else the client sends travels in the raw payload.
type LeadContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// UnmarshalJSON takes numbers as text, so a phone sent as 15551234567 still
// reaches validation. Any other non-string value decodes as empty.
func (c *LeadContact) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name  json.RawMessage `json:"name"`
		Phone json.RawMessage `json:"phone"`
		Email json.RawMessage `json:"email"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		*c = LeadContact{}
		return nil
	}

	*c = LeadContact{
		Name:  scalarText(raw.Name),
		Phone: scalarText(raw.Phone),
		Email: scalarText(raw.Email),
	}
	return nil
}

func scalarText(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	return ""
}

// LeadEvent is published after a lead has been notified.
type LeadEvent struct {
	Reference       string    `json:"reference"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email,omitempty"`
	PropertyDetails string    `json:"property_details"`
	SMSSid          string    `json:"sms_sid,omitempty"`
	NotifiedAt      time.Time `json:"notified_at"`
}

type LeadEventPublisher interface {
	PublishLeadEvent(ctx context.Context, event LeadEvent) error
}
