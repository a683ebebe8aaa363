package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/integration/supabase"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
)

type MockEmailRepository struct {
	mock.Mock
}

func (m *MockEmailRepository) FindByID(ctx context.Context, id string) (entity.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entity.Document), args.Error(1)
}

func (m *MockEmailRepository) Update(ctx context.Context, id string, update entity.EmailUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockEmailRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmailRepository) BulkUpdate(ctx context.Context, ids []string, update entity.EmailUpdate) (entity.BulkUpdateResult, error) {
	args := m.Called(ctx, ids, update)
	return args.Get(0).(entity.BulkUpdateResult), args.Error(1)
}

type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) SendSMS(ctx context.Context, to, body string) (string, error) {
	args := m.Called(ctx, to, body)
	return args.String(0), args.Error(1)
}

type MockLeadMailer struct {
	mock.Mock
}

func (m *MockLeadMailer) SendLeadNotification(to string, data mail.LeadNotificationData) error {
	args := m.Called(to, data)
	return args.Error(0)
}

type MockAuthProvider struct {
	mock.Mock
}

func (m *MockAuthProvider) SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.Session), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

type MockTestMailer struct {
	mock.Mock
}

func (m *MockTestMailer) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockTestMailer) SendTest() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
