package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"outlaw/internal/service"
)

// SurveyHandler handles survey endpoints.
type SurveyHandler struct {
	surveys service.SurveyService
}

// NewSurveyHandler creates a new survey handler.
func NewSurveyHandler(surveys service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys}
}

// GenerateSurveyRequest carries the product idea to build questions for.
type GenerateSurveyRequest struct {
	ProductIdea string `json:"productIdea" validate:"required"`
}

// List godoc
// @Summary List surveys
// @Tags surveys
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys [get]
func (h *SurveyHandler) List(c echo.Context) error {
	surveys, err := h.surveys.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return list(c, surveys)
}

// Generate godoc
// @Summary Generate survey questions for a product idea
// @Tags surveys
// @Accept json
// @Produce json
// @Param request body GenerateSurveyRequest true "Product idea"
// @Success 201 {object} model.Survey
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /surveys/generate [post]
func (h *SurveyHandler) Generate(c echo.Context) error {
	var req GenerateSurveyRequest
	if err := bind(c, &req, "Please provide a product idea"); err != nil {
		return err
	}

	survey, err := h.surveys.Generate(c.Request().Context(), req.ProductIdea)
	if err != nil {
		return fail(err)
	}
	return ok(c, http.StatusCreated, survey)
}
