package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"outlaw/internal/service"
)

// BookingHandler handles time slot endpoints.
type BookingHandler struct {
	bookings service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// CreateSlotRequest represents a new interview slot.
type CreateSlotRequest struct {
	CreatorID   string   `json:"creatorId" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	StartTime   string   `json:"startTime" validate:"required"`
	EndTime     string   `json:"endTime" validate:"required"`
	Questions   []string `json:"questions"`
	NotifyEmail string   `json:"email"`
}

// BookSlotRequest represents an SME booking an open slot.
type BookSlotRequest struct {
	SlotID      string   `json:"id" validate:"required"`
	SMEID       string   `json:"smeId" validate:"required"`
	NotifyEmail string   `json:"email"`
	Questions   []string `json:"questions"`
}

// ResendRequest asks for a booking confirmation to be sent again.
type ResendRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

// CancelRequest cancels a booking. NotifyParticipants defaults to true.
type CancelRequest struct {
	BookingID          string `json:"bookingId" validate:"required"`
	NotifyParticipants *bool  `json:"notifyParticipants"`
}

// NotifySurveyRequest asks for a survey creation email.
type NotifySurveyRequest struct {
	Email       string   `json:"email" validate:"required"`
	SurveyTitle string   `json:"title"`
	Questions   []string `json:"questions" validate:"required"`
}

// CreateSlotResponse is the new slot plus the optional confirmation outcome.
type CreateSlotResponse struct {
	Success bool                `json:"success"`
	Data    interface{}         `json:"data"`
	Email   service.EmailResult `json:"email"`
}

// BookSlotResponse is the booked slot plus the notification outcomes.
type BookSlotResponse struct {
	Success bool                  `json:"success"`
	Data    interface{}           `json:"data"`
	Emails  service.BookingEmails `json:"emails"`
}

// CancelResponse is the released slot plus the notification outcomes.
type CancelResponse struct {
	Success       bool                        `json:"success"`
	Message       string                      `json:"message"`
	Data          interface{}                 `json:"data"`
	Notifications service.CancelNotifications `json:"notifications"`
}

// MessageResponse acknowledges a sent email.
type MessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
}

// Create godoc
// @Summary Create an interview slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateSlotRequest true "Slot data"
// @Success 201 {object} CreateSlotResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/create [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req CreateSlotRequest
	if err := bind(c, &req, "Please provide all required fields"); err != nil {
		return err
	}

	slot, email, err := h.bookings.CreateSlot(c.Request().Context(), service.CreateSlotInput{
		CreatorID:   req.CreatorID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Questions:   req.Questions,
		NotifyEmail: req.NotifyEmail,
	})
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, CreateSlotResponse{Success: true, Data: slot, Email: email})
}

// Available godoc
// @Summary List open slots
// @Tags bookings
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/available [get]
func (h *BookingHandler) Available(c echo.Context) error {
	slots, err := h.bookings.ListOpenSlots(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return list(c, slots)
}

// All godoc
// @Summary List all slots
// @Tags bookings
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) All(c echo.Context) error {
	slots, err := h.bookings.ListAll(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return list(c, slots)
}

// ByCreator godoc
// @Summary List slots created by a user
// @Tags bookings
// @Produce json
// @Param creatorId path string true "Creator ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Router /bookings/creator/{creatorId} [get]
func (h *BookingHandler) ByCreator(c echo.Context) error {
	slots, err := h.bookings.ListByCreator(c.Request().Context(), c.Param("creatorId"))
	if err != nil {
		return fail(err)
	}
	return list(c, slots)
}

// BySME godoc
// @Summary List slots booked by an SME
// @Tags bookings
// @Produce json
// @Param smeId path string true "SME ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} errors.ErrorResponse
// @Router /bookings/sme/{smeId} [get]
func (h *BookingHandler) BySME(c echo.Context) error {
	slots, err := h.bookings.ListBySME(c.Request().Context(), c.Param("smeId"))
	if err != nil {
		return fail(err)
	}
	return list(c, slots)
}

// Book godoc
// @Summary Book an open slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookSlotRequest true "Booking data"
// @Success 200 {object} BookSlotResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/book [put]
func (h *BookingHandler) Book(c echo.Context) error {
	var req BookSlotRequest
	if err := bind(c, &req, "Please provide slot ID and SME ID"); err != nil {
		return err
	}

	slot, emails, err := h.bookings.BookSlot(c.Request().Context(), service.BookSlotInput{
		SlotID:      req.SlotID,
		SMEID:       req.SMEID,
		NotifyEmail: req.NotifyEmail,
		Questions:   req.Questions,
	})
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, BookSlotResponse{Success: true, Data: slot, Emails: emails})
}

// Resend godoc
// @Summary Resend a booking confirmation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body ResendRequest true "Booking and recipient"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/resend-email [post]
func (h *BookingHandler) Resend(c echo.Context) error {
	var req ResendRequest
	if err := bind(c, &req, "Please provide booking ID and email address"); err != nil {
		return err
	}

	id, err := h.bookings.ResendConfirmation(c.Request().Context(), req.BookingID, req.Email)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success:   true,
		Message:   "Confirmation email resent successfully",
		MessageID: id,
	})
}

// Cancel godoc
// @Summary Cancel a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CancelRequest true "Booking to cancel"
// @Success 200 {object} CancelResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	var req CancelRequest
	if err := bind(c, &req, "Please provide booking ID"); err != nil {
		return err
	}
	notifyParticipants := true
	if req.NotifyParticipants != nil {
		notifyParticipants = *req.NotifyParticipants
	}

	slot, notes, err := h.bookings.CancelBooking(c.Request().Context(), req.BookingID, notifyParticipants)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, CancelResponse{
		Success:       true,
		Message:       "Booking successfully cancelled",
		Data:          slot,
		Notifications: notes,
	})
}

// NotifySurvey godoc
// @Summary Email a survey creation confirmation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body NotifySurveyRequest true "Survey summary"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/notify-survey [post]
func (h *BookingHandler) NotifySurvey(c echo.Context) error {
	var req NotifySurveyRequest
	if err := bind(c, &req, "Please provide email and questions array"); err != nil {
		return err
	}

	id, err := h.bookings.NotifySurveyCreation(c.Request().Context(), req.Email, req.SurveyTitle, req.Questions)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Success:   true,
		Message:   "Survey creation notification sent successfully",
		MessageID: id,
	})
}
