package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "outlaw/internal/errors"
	"outlaw/internal/model"
	"outlaw/internal/service"
)

// ContextUserKey is where the bearer middleware stores the authenticated *model.User.
const ContextUserKey = "user"

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	identity service.IdentityService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identity service.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// GoogleAuthRequest carries a Google ID token, or the profile fields sent by older clients.
type GoogleAuthRequest struct {
	Token    string `json:"token"`
	GoogleID string `json:"googleId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// AuthResponse is the user profile returned together with a bearer token.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func authResponse(res *service.AuthResult) AuthResponse {
	return AuthResponse{
		ID:    res.User.ID,
		Name:  res.User.Name,
		Email: res.User.Email,
		Token: res.Token,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req, "Please provide name, email and password"); err != nil {
		return err
	}

	res, err := h.identity.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return fail(err)
	}
	return ok(c, http.StatusCreated, authResponse(res))
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req, "Please provide email and password"); err != nil {
		return err
	}

	res, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(err)
	}
	return ok(c, http.StatusOK, authResponse(res))
}

// Google godoc
// @Summary Sign in with Google
// @Description Verifies a Google ID token when "token" is present, otherwise accepts googleId/email/name.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleAuthRequest true "Google credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/google [post]
// @Router /auth/google/callback [post]
func (h *AuthHandler) Google(c echo.Context) error {
	var req GoogleAuthRequest
	if err := bind(c, &req, "Missing required Google authentication data"); err != nil {
		return err
	}

	res, err := h.identity.GoogleAuth(c.Request().Context(), service.GoogleAuthInput{
		Token:    req.Token,
		GoogleID: req.GoogleID,
		Email:    req.Email,
		Name:     req.Name,
	})
	if err != nil {
		return fail(err)
	}
	return ok(c, http.StatusOK, authResponse(res))
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, found := c.Get(ContextUserKey).(*model.User)
	if !found || user == nil {
		return fail(apperrors.Unauthorized("Not authorized, no token"))
	}
	return ok(c, http.StatusOK, user)
}
