package usecase

import (
	"strings"
)

// LeadNotifierConfig lists the settings the lead notification cannot run without.
type LeadNotifierConfig struct {
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	AdminEmail        string
	SMTPEmail         string
	SMTPPassword      string
}

// Missing returns the environment names of absent settings.
func (c LeadNotifierConfig) Missing() []string {
	var missing []string
	check := func(name, val string) {
		if strings.TrimSpace(val) == "" {
			missing = append(missing, name)
		}
	}
	check("TWILIO_ACCOUNT_SID", c.TwilioAccountSID)
	check("TWILIO_AUTH_TOKEN", c.TwilioAuthToken)
	check("TWILIO_PHONE_NUMBER", c.TwilioPhoneNumber)
	check("ADMIN_EMAIL", c.AdminEmail)
	check("SMTP_EMAIL", c.SMTPEmail)
	check("SMTP_PASSWORD", c.SMTPPassword)
	return missing
}

func ValidateNotifyLeadInterestInput(input NotifyLeadInterestInput) error {
	if input.Lead.Phone == "" || input.Lead.Name == "" || input.PropertyDetails == "" {
		return &DomainError{
			Code:    CodeInvalidInput,
			Message: "Missing required fields: lead.name, lead.phone and propertyDetails",
		}
	}
	return nil
}

func ValidateLoginInput(input LoginInput) error {
	if input.Email == "" || input.Password == "" {
		return &DomainError{
			Code:    CodeInvalidInput,
			Message: "Email and password are required",
		}
	}
	return nil
}
