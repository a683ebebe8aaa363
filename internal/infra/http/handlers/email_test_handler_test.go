package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
)

func TestEmailTestStatus(t *testing.T) {
	mailer := new(MockTestMailer)
	mailer.On("Configured").Return(true)
	h := handlers.NewEmailTestHandler(mailer)

	w := do(t, http.HandlerFunc(h.Status), http.MethodGet, "/api/email-test", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"configured":true,"message":"SMTP credentials are configured"}`, w.Body.String())
	mailer.AssertNotCalled(t, "SendTest")
}

func TestEmailTestStatusNotConfigured(t *testing.T) {
	mailer := new(MockTestMailer)
	mailer.On("Configured").Return(false)
	h := handlers.NewEmailTestHandler(mailer)

	w := do(t, http.HandlerFunc(h.Status), http.MethodGet, "/api/email-test", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false,"configured":false,"message":"SMTP credentials are not configured"}`, w.Body.String())
}

func TestEmailTestSend(t *testing.T) {
	mailer := new(MockTestMailer)
	mailer.On("Configured").Return(true)
	mailer.On("SendTest").Return("crm@example.com", nil).Once()
	h := handlers.NewEmailTestHandler(mailer)

	w := do(t, http.HandlerFunc(h.Send), http.MethodPost, "/api/email-test", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Test email sent to crm@example.com"}`, w.Body.String())
	mailer.AssertExpectations(t)
}

func TestEmailTestSendFailure(t *testing.T) {
	mailer := new(MockTestMailer)
	mailer.On("Configured").Return(true)
	mailer.On("SendTest").Return("", errors.New("535 5.7.8 Username and Password not accepted"))
	h := handlers.NewEmailTestHandler(mailer)

	w := do(t, http.HandlerFunc(h.Send), http.MethodPost, "/api/email-test", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to send test email"}`, w.Body.String())
}

func TestEmailTestSendNotConfigured(t *testing.T) {
	mailer := new(MockTestMailer)
	mailer.On("Configured").Return(false)
	h := handlers.NewEmailTestHandler(mailer)

	w := do(t, http.HandlerFunc(h.Send), http.MethodPost, "/api/email-test", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"SMTP credentials are not configured"}`, w.Body.String())
	mailer.AssertNotCalled(t, "SendTest")
}
