package supabase

import "fmt"

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	User         *User  `json:"user"`
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// APIError carries the status and message GoTrue returned. Both the legacy
// (error/error_description) and current (error_code/msg) shapes are read.
type APIError struct {
	StatusCode       int    `json:"-"`
	Code             string `json:"error_code"`
	Msg              string `json:"msg"`
	LegacyCode       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *APIError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.ErrorDescription
	}
	code := e.Code
	if code == "" {
		code = e.LegacyCode
	}
	return fmt.Sprintf("supabase auth: %s (status %d, code %s)", msg, e.StatusCode, code)
}

// Rejected reports whether the provider refused the credentials rather than failing.
func (e *APIError) Rejected() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
