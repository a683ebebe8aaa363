package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
)

type NotifyLeadInterestUseCase struct {
	SMS    SMSSender
	Mailer LeadMailer
	Events entity.LeadEventPublisher
	Config LeadNotifierConfig

	now    func() time.Time
	newRef func() string
}

func NewNotifyLeadInterestUseCase(
	sms SMSSender,
	mailer LeadMailer,
	events entity.LeadEventPublisher,
	cfg LeadNotifierConfig,
) *NotifyLeadInterestUseCase {
	return &NotifyLeadInterestUseCase{
		SMS:    sms,
		Mailer: mailer,
		Events: events,
		Config: cfg,
		now:    time.Now,
		newRef: uuid.NewString,
	}
}

// LeadSMSBody is the confirmation text sent to the lead.
func LeadSMSBody(name, propertyDetails string) string {
	return fmt.Sprintf("Thank you for your time, %s! Here are the property details you discussed:\n%s", name, propertyDetails)
}

// CheckConfig fails when a setting the notification needs is absent.
func (uc *NotifyLeadInterestUseCase) CheckConfig() error {
	if missing := uc.Config.Missing(); len(missing) > 0 {
		return &TechnicalError{
			Code:    CodeMisconfigured,
			Message: "Server configuration error",
			Err:     fmt.Errorf("missing settings: %s", strings.Join(missing, ", ")),
		}
	}
	return nil
}

// Execute texts the lead, then tells the admin. Only the SMS decides the
// outcome: admin mail and event publication failures are logged.
func (uc *NotifyLeadInterestUseCase) Execute(ctx context.Context, input NotifyLeadInterestInput) (*NotifyLeadInterestOutput, error) {
	if err := uc.CheckConfig(); err != nil {
		return nil, err
	}

	if err := ValidateNotifyLeadInterestInput(input); err != nil {
		return nil, err
	}

	out := &NotifyLeadInterestOutput{Reference: uc.newRef()}
	logger := log.With().Str("reference", out.Reference).Str("phone", input.Lead.Phone).Logger()

	sid, err := uc.SMS.SendSMS(ctx, input.Lead.Phone, LeadSMSBody(input.Lead.Name, input.PropertyDetails))
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeSMSDispatchFailed,
			Message: "Failed to send SMS",
			Err:     err,
		}
	}
	out.SMSSid = sid
	logger.Info().Str("sms_sid", sid).Msg("lead confirmation sms sent")

	err = uc.Mailer.SendLeadNotification(uc.Config.AdminEmail, mail.LeadNotificationData{
		Reference:       out.Reference,
		Name:            input.Lead.Name,
		Phone:           input.Lead.Phone,
		Email:           input.Lead.Email,
		PropertyDetails: input.PropertyDetails,
		RawPayload:      indentPayload(input),
	})
	if err != nil {
		logger.Error().Err(err).Msg("admin lead notification failed")
	} else {
		out.AdminNotified = true
	}

	if uc.Events != nil {
		event := entity.LeadEvent{
			Reference:       out.Reference,
			Name:            input.Lead.Name,
			Phone:           input.Lead.Phone,
			Email:           input.Lead.Email,
			PropertyDetails: input.PropertyDetails,
			SMSSid:          sid,
			NotifiedAt:      uc.now().UTC(),
		}
		if err := uc.Events.PublishLeadEvent(ctx, event); err != nil {
			logger.Warn().Err(err).Msg("lead event not published")
		} else {
			out.EventPublished = true
		}
	}

	return out, nil
}

func indentPayload(input NotifyLeadInterestInput) string {
	if len(input.Raw) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, input.Raw, "", "  "); err == nil {
			return buf.String()
		}
		return string(input.Raw)
	}
	b, _ := json.MarshalIndent(input, "", "  ")
	return string(b)
}
