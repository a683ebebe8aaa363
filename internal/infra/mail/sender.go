package mail

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("smtp credentials not configured")

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// WithSender sets the optional display name and reply-to override.
func (s *EmailSender) WithSender(fromName, replyTo string) *EmailSender {
	s.FromName = fromName
	s.ReplyTo = replyTo
	return s
}

func (s *EmailSender) Configured() bool {
	return s.User != "" && s.Password != ""
}

// SendTest mails the fixed test template to the SMTP account itself and
// returns the recipient.
func (s *EmailSender) SendTest() (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	html, err := render("test.html", struct{ Account string }{Account: s.User})
	if err != nil {
		return "", err
	}

	if err := s.send(s.User, "CRM email configuration test", html); err != nil {
		return "", err
	}
	return s.User, nil
}

func (s *EmailSender) SendLeadNotification(to string, data LeadNotificationData) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	html, err := render("lead_notification.html", data)
	if err != nil {
		return err
	}

	return s.send(to, fmt.Sprintf("New interested lead: %s", data.Name), html)
}

func (s *EmailSender) send(to, subject, html string) error {
	m := gomail.NewMessage()
	if s.FromName != "" {
		m.SetAddressHeader("From", s.User, s.FromName)
	} else {
		m.SetHeader("From", s.User)
	}
	if s.ReplyTo != "" {
		m.SetHeader("Reply-To", s.ReplyTo)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", HTMLToText(html))
	m.AddAlternative("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

func render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return body.String(), nil
}

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	blankLinesPattern = regexp.MustCompile(`\n\s*\n+`)
)

// HTMLToText approximates a plain-text body by stripping tags. Entities are
// left as they are.
func HTMLToText(html string) string {
	text := tagPattern.ReplaceAllString(html, "")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = blankLinesPattern.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}
