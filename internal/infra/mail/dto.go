package mail

// LeadNotificationData feeds the admin notification template.
type LeadNotificationData struct {
	Reference       string
	Name            string
	Phone           string
	Email           string
	PropertyDetails string
	RawPayload      string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
	ReplyTo  string

	dialer dialer
}
