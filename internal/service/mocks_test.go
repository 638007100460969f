package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"outlaw/internal/auth"
	"outlaw/internal/model"
	"outlaw/internal/notify"
)

// MockTimeSlotRepository is a mock implementation of TimeSlotRepository.
type MockTimeSlotRepository struct {
	mock.Mock
}

func (m *MockTimeSlotRepository) Create(ctx context.Context, slot *model.TimeSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockTimeSlotRepository) FindByID(ctx context.Context, id string) (*model.TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepository) List(ctx context.Context) ([]model.TimeSlot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepository) ListOpen(ctx context.Context) ([]model.TimeSlot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepository) ListByCreator(ctx context.Context, creatorID string) ([]model.TimeSlot, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]model.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepository) ListBySME(ctx context.Context, smeID string) ([]model.TimeSlot, error) {
	args := m.Called(ctx, smeID)
	return args.Get(0).([]model.TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepository) MarkBooked(ctx context.Context, id, smeID string, questions []string) (bool, error) {
	args := m.Called(ctx, id, smeID, questions)
	return args.Bool(0), args.Error(1)
}

func (m *MockTimeSlotRepository) MarkCancelled(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTimeSlotRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) SetGoogleID(ctx context.Context, id, googleID string) error {
	args := m.Called(ctx, id, googleID)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSurveyRepository is a mock implementation of SurveyRepository.
type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockSurveyRepository) List(ctx context.Context) ([]model.Survey, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Survey), args.Error(1)
}

// MockMailer is a mock implementation of Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendBookingConfirmation(ctx context.Context, recipient string, d notify.BookingDetails) (string, error) {
	args := m.Called(ctx, recipient, d)
	return args.String(0), args.Error(1)
}

func (m *MockMailer) SendSurveyCreationConfirmation(ctx context.Context, recipient string, d notify.SurveyDetails) (string, error) {
	args := m.Called(ctx, recipient, d)
	return args.String(0), args.Error(1)
}

// MockGoogleVerifier is a mock implementation of auth.GoogleVerifier.
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) Verify(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.GoogleIdentity), args.Error(1)
}
