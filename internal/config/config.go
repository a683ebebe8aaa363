package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration read from the environment.
type Config struct {
	Port string

	MongoURI      string
	MongoDatabase string
	DatabaseURL   string
	RabbitMQURL   string

	AdminEmail string

	SMTPHost     string
	SMTPPort     int
	SMTPEmail    string
	SMTPPassword string
	SMTPFromName string
	SMTPReplyTo  string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	SupabaseURL     string
	SupabaseAnonKey string

	VapiAPIKey  string
	VapiBaseURL string

	AllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "crm"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RabbitMQURL:   os.Getenv("RABBITMQ_URL"),

		AdminEmail: os.Getenv("ADMIN_EMAIL"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPEmail:    os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFromName: os.Getenv("SMTP_FROM_NAME"),
		SMTPReplyTo:  os.Getenv("SMTP_REPLY_TO"),

		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),

		SupabaseURL:     strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),

		VapiAPIKey:  os.Getenv("VAPI_API_KEY"),
		VapiBaseURL: strings.TrimRight(getEnv("VAPI_BASE_URL", "https://api.vapi.ai"), "/"),

		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}
}

// Validate reports the settings the server cannot start without.
// Feature secrets (SMTP, Twilio, Vapi) are checked when the feature is used.
func (c Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI is required"))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	return errors.Join(errs...)
}

// SMTPConfigured reports whether outbound mail credentials are present.
func (c Config) SMTPConfigured() bool {
	return c.SMTPEmail != "" && c.SMTPPassword != ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
