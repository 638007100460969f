package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"outlaw/internal/model"
	"outlaw/internal/service"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateSlot(ctx context.Context, in service.CreateSlotInput) (*model.TimeSlot, service.EmailResult, error) {
	args := m.Called(ctx, in)
	slot, _ := args.Get(0).(*model.TimeSlot)
	return slot, args.Get(1).(service.EmailResult), args.Error(2)
}

func (m *MockBookingService) ListOpenSlots(ctx context.Context) ([]model.TimeSlot, error) {
	args := m.Called(ctx)
	slots, _ := args.Get(0).([]model.TimeSlot)
	return slots, args.Error(1)
}

func (m *MockBookingService) ListAll(ctx context.Context) ([]model.TimeSlot, error) {
	args := m.Called(ctx)
	slots, _ := args.Get(0).([]model.TimeSlot)
	return slots, args.Error(1)
}

func (m *MockBookingService) ListByCreator(ctx context.Context, creatorID string) ([]model.TimeSlot, error) {
	args := m.Called(ctx, creatorID)
	slots, _ := args.Get(0).([]model.TimeSlot)
	return slots, args.Error(1)
}

func (m *MockBookingService) ListBySME(ctx context.Context, smeID string) ([]model.TimeSlot, error) {
	args := m.Called(ctx, smeID)
	slots, _ := args.Get(0).([]model.TimeSlot)
	return slots, args.Error(1)
}

func (m *MockBookingService) BookSlot(ctx context.Context, in service.BookSlotInput) (*model.TimeSlot, service.BookingEmails, error) {
	args := m.Called(ctx, in)
	slot, _ := args.Get(0).(*model.TimeSlot)
	return slot, args.Get(1).(service.BookingEmails), args.Error(2)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, slotID string, notifyParticipants bool) (*model.TimeSlot, service.CancelNotifications, error) {
	args := m.Called(ctx, slotID, notifyParticipants)
	slot, _ := args.Get(0).(*model.TimeSlot)
	return slot, args.Get(1).(service.CancelNotifications), args.Error(2)
}

func (m *MockBookingService) ResendConfirmation(ctx context.Context, slotID, email string) (string, error) {
	args := m.Called(ctx, slotID, email)
	return args.String(0), args.Error(1)
}

func (m *MockBookingService) NotifySurveyCreation(ctx context.Context, email, title string, questions []string) (string, error) {
	args := m.Called(ctx, email, title, questions)
	return args.String(0), args.Error(1)
}

type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Register(ctx context.Context, name, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, name, email, password)
	res, _ := args.Get(0).(*service.AuthResult)
	return res, args.Error(1)
}

func (m *MockIdentityService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*service.AuthResult)
	return res, args.Error(1)
}

func (m *MockIdentityService) GoogleAuth(ctx context.Context, in service.GoogleAuthInput) (*service.AuthResult, error) {
	args := m.Called(ctx, in)
	res, _ := args.Get(0).(*service.AuthResult)
	return res, args.Error(1)
}

func (m *MockIdentityService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

type MockSurveyService struct {
	mock.Mock
}

func (m *MockSurveyService) Generate(ctx context.Context, productIdea string) (*model.Survey, error) {
	args := m.Called(ctx, productIdea)
	s, _ := args.Get(0).(*model.Survey)
	return s, args.Error(1)
}

func (m *MockSurveyService) List(ctx context.Context) ([]model.Survey, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]model.Survey)
	return s, args.Error(1)
}

type MockMailDiagnostics struct {
	mock.Mock
}

func (m *MockMailDiagnostics) SendTestEmail(ctx context.Context, recipient string) (string, error) {
	args := m.Called(ctx, recipient)
	return args.String(0), args.Error(1)
}

func (m *MockMailDiagnostics) SendSimpleTestEmail(ctx context.Context, recipient string) (string, error) {
	args := m.Called(ctx, recipient)
	return args.String(0), args.Error(1)
}

func (m *MockMailDiagnostics) SendDebugEmail(ctx context.Context, recipient string) (string, error) {
	args := m.Called(ctx, recipient)
	return args.String(0), args.Error(1)
}

func (m *MockMailDiagnostics) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
