package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "outlaw/internal/errors"
	"outlaw/internal/logging"
	"outlaw/internal/model"
	"outlaw/internal/notify"
	"outlaw/internal/repository"
)

const defaultSurveyTitle = "AI-Generated Survey"

// Mailer is the subset of the notifier the booking workflow needs.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, recipient string, d notify.BookingDetails) (string, error)
	SendSurveyCreationConfirmation(ctx context.Context, recipient string, d notify.SurveyDetails) (string, error)
}

// EmailResult is the outcome of one best-effort notification.
type EmailResult struct {
	Sent      bool   `json:"sent"`
	MessageID string `json:"messageId,omitempty"`
	Email     string `json:"email,omitempty"`
	Error     string `json:"error,omitempty"`
}

// CreateSlotInput carries the fields of a new time slot.
type CreateSlotInput struct {
	CreatorID   string
	Date        string
	StartTime   string
	EndTime     string
	Questions   []string
	NotifyEmail string
}

// BookSlotInput carries a booking request.
type BookSlotInput struct {
	SlotID      string
	SMEID       string
	NotifyEmail string
	Questions   []string
}

// BookingEmails reports the notifications sent after a booking.
type BookingEmails struct {
	SME     EmailResult `json:"sme"`
	Creator EmailResult `json:"creator"`
}

// CancelNotifications reports the notifications sent after a cancellation.
type CancelNotifications struct {
	Sent    bool        `json:"sent"`
	Creator EmailResult `json:"creator"`
	SME     EmailResult `json:"sme"`
}

// BookingService manages the time slot lifecycle.
type BookingService interface {
	CreateSlot(ctx context.Context, in CreateSlotInput) (*model.TimeSlot, EmailResult, error)
	ListOpenSlots(ctx context.Context) ([]model.TimeSlot, error)
	ListAll(ctx context.Context) ([]model.TimeSlot, error)
	ListByCreator(ctx context.Context, creatorID string) ([]model.TimeSlot, error)
	ListBySME(ctx context.Context, smeID string) ([]model.TimeSlot, error)
	BookSlot(ctx context.Context, in BookSlotInput) (*model.TimeSlot, BookingEmails, error)
	CancelBooking(ctx context.Context, slotID string, notifyParticipants bool) (*model.TimeSlot, CancelNotifications, error)
	ResendConfirmation(ctx context.Context, slotID, email string) (string, error)
	NotifySurveyCreation(ctx context.Context, email, title string, questions []string) (string, error)
}

type bookingService struct {
	slots  repository.TimeSlotRepository
	users  repository.UserRepository
	mailer Mailer
}

// NewBookingService wires the booking workflow.
func NewBookingService(slots repository.TimeSlotRepository, users repository.UserRepository, mailer Mailer) BookingService {
	return &bookingService{slots: slots, users: users, mailer: mailer}
}

// ParseSlotDate accepts YYYY-MM-DD or RFC 3339 and returns the calendar date at UTC midnight.
func ParseSlotDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func (s *bookingService) CreateSlot(ctx context.Context, in CreateSlotInput) (*model.TimeSlot, EmailResult, error) {
	if in.CreatorID == "" || in.Date == "" || in.StartTime == "" || in.EndTime == "" {
		return nil, EmailResult{}, apperrors.Validation("Please provide all required fields")
	}
	date, err := ParseSlotDate(in.Date)
	if err != nil {
		return nil, EmailResult{}, apperrors.Validation("Invalid date, expected YYYY-MM-DD")
	}

	questions := in.Questions
	if questions == nil {
		questions = []string{}
	}
	slot := &model.TimeSlot{
		CreatorID: in.CreatorID,
		Date:      date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Questions: questions,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, EmailResult{}, fmt.Errorf("create time slot: %w", err)
	}
	logging.Ctx(ctx).Info().Str("slot_id", slot.ID).Str("creator_id", slot.CreatorID).Msg("time slot created")

	result := EmailResult{}
	if in.NotifyEmail != "" {
		result = s.notify(ctx, in.NotifyEmail, slotDetails(slot, slot.Questions))
	}
	return slot, result, nil
}

func (s *bookingService) ListOpenSlots(ctx context.Context) ([]model.TimeSlot, error) {
	return s.slots.ListOpen(ctx)
}

func (s *bookingService) ListAll(ctx context.Context) ([]model.TimeSlot, error) {
	return s.slots.List(ctx)
}

func (s *bookingService) ListByCreator(ctx context.Context, creatorID string) ([]model.TimeSlot, error) {
	if creatorID == "" {
		return nil, apperrors.Validation("Please provide creator ID")
	}
	return s.slots.ListByCreator(ctx, creatorID)
}

func (s *bookingService) ListBySME(ctx context.Context, smeID string) ([]model.TimeSlot, error) {
	if smeID == "" {
		return nil, apperrors.Validation("Please provide SME ID")
	}
	return s.slots.ListBySME(ctx, smeID)
}

func (s *bookingService) BookSlot(ctx context.Context, in BookSlotInput) (*model.TimeSlot, BookingEmails, error) {
	var emails BookingEmails
	if in.SlotID == "" || in.SMEID == "" {
		return nil, emails, apperrors.Validation("Please provide slot ID and SME ID")
	}

	slot, err := s.findSlot(ctx, in.SlotID, "Time slot not found")
	if err != nil {
		return nil, emails, err
	}
	if slot.IsBooked {
		return nil, emails, apperrors.Conflict("This time slot is already booked")
	}

	ok, err := s.slots.MarkBooked(ctx, slot.ID, in.SMEID, in.Questions)
	if err != nil {
		return nil, emails, fmt.Errorf("book time slot: %w", err)
	}
	if !ok {
		return nil, emails, apperrors.Conflict("This time slot is already booked")
	}

	smeID := in.SMEID
	slot.SMEID = &smeID
	slot.IsBooked = true
	if len(in.Questions) > 0 {
		slot.Questions = in.Questions
	}
	logging.Ctx(ctx).Info().Str("slot_id", slot.ID).Str("sme_id", smeID).Msg("time slot booked")

	if in.NotifyEmail != "" {
		emails.SME = s.notify(ctx, in.NotifyEmail, slotDetails(slot, slot.Questions))
	}

	details := slotDetails(slot, slot.Questions)
	details.IsCreator = true
	emails.Creator = s.notifyUser(ctx, slot.CreatorID, details)

	return slot, emails, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, slotID string, notifyParticipants bool) (*model.TimeSlot, CancelNotifications, error) {
	var notes CancelNotifications
	if slotID == "" {
		return nil, notes, apperrors.Validation("Please provide booking ID")
	}

	slot, err := s.findSlot(ctx, slotID, "Booking not found")
	if err != nil {
		return nil, notes, err
	}
	if !slot.IsBooked {
		return nil, notes, apperrors.Conflict("This slot is not currently booked")
	}

	previousSME := slot.SMEID
	previousQuestions := slot.Questions

	ok, err := s.slots.MarkCancelled(ctx, slot.ID)
	if err != nil {
		return nil, notes, fmt.Errorf("cancel booking: %w", err)
	}
	if !ok {
		return nil, notes, apperrors.Conflict("This slot is not currently booked")
	}

	slot.SMEID = nil
	slot.IsBooked = false
	slot.Questions = []string{}
	logging.Ctx(ctx).Info().Str("slot_id", slot.ID).Msg("booking cancelled")

	if !notifyParticipants {
		return slot, notes, nil
	}

	creatorDetails := slotDetails(slot, previousQuestions)
	creatorDetails.IsCancellation = true
	creatorDetails.IsCreator = true
	notes.Creator = s.notifyUser(ctx, slot.CreatorID, creatorDetails)

	if previousSME != nil {
		smeDetails := slotDetails(slot, previousQuestions)
		smeDetails.IsCancellation = true
		smeDetails.IsSME = true
		notes.SME = s.notifyUser(ctx, *previousSME, smeDetails)
	}

	notes.Sent = notes.Creator.Sent || notes.SME.Sent
	return slot, notes, nil
}

func (s *bookingService) ResendConfirmation(ctx context.Context, slotID, email string) (string, error) {
	if slotID == "" || email == "" {
		return "", apperrors.Validation("Please provide booking ID and email address")
	}

	slot, err := s.findSlot(ctx, slotID, "Booking not found")
	if err != nil {
		return "", err
	}

	return s.mailer.SendBookingConfirmation(ctx, email, slotDetails(slot, slot.Questions))
}

func (s *bookingService) NotifySurveyCreation(ctx context.Context, email, title string, questions []string) (string, error) {
	if email == "" || questions == nil {
		return "", apperrors.Validation("Please provide email and questions array")
	}
	if title == "" {
		title = defaultSurveyTitle
	}

	return s.mailer.SendSurveyCreationConfirmation(ctx, email, notify.SurveyDetails{
		Title:     title,
		Questions: questions,
		CreatedAt: time.Now(),
	})
}

func (s *bookingService) findSlot(ctx context.Context, id, notFound string) (*model.TimeSlot, error) {
	slot, err := s.slots.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(notFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find time slot: %w", err)
	}
	return slot, nil
}

// notify sends one email and folds the outcome into an EmailResult.
func (s *bookingService) notify(ctx context.Context, recipient string, d notify.BookingDetails) EmailResult {
	id, err := s.mailer.SendBookingConfirmation(ctx, recipient, d)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("recipient", recipient).Msg("booking notification failed")
		return EmailResult{Error: err.Error()}
	}
	return EmailResult{Sent: true, MessageID: id, Email: recipient}
}

// notifyUser looks up a participant and emails them. A missing user or address is skipped.
func (s *bookingService) notifyUser(ctx context.Context, userID string, d notify.BookingDetails) EmailResult {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Ctx(ctx).Debug().Str("user_id", userID).Msg("participant not found, skipping notification")
		return EmailResult{}
	}
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("participant lookup failed")
		return EmailResult{Error: err.Error()}
	}
	if user.Email == "" {
		return EmailResult{}
	}
	return s.notify(ctx, user.Email, d)
}

func slotDetails(slot *model.TimeSlot, questions []string) notify.BookingDetails {
	return notify.BookingDetails{
		Date:      slot.Date,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Questions: questions,
	}
}
