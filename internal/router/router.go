package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	apperrors "outlaw/internal/errors"
	"outlaw/internal/handler"
	"outlaw/internal/logging"
	appmiddleware "outlaw/internal/middleware"
	"outlaw/internal/service"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth        *handler.AuthHandler
	Bookings    *handler.BookingHandler
	Diagnostics *handler.DiagnosticsHandler
	Surveys     *handler.SurveyHandler
	Health      *handler.HealthHandler
}

// Register wires routes and middleware.
// authLimiter throttles register and login per client IP.
func Register(e *echo.Echo, h Handlers, identity service.IdentityService, authLimiter *appmiddleware.RateLimiter) {
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.RequestContext())
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/", h.Health.Root)
	e.GET("/healthz", h.Health.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	limited := appmiddleware.RateLimit(authLimiter)
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Auth.Register, limited)
	authGroup.POST("/login", h.Auth.Login, limited)
	authGroup.POST("/google", h.Auth.Google)
	authGroup.POST("/google/callback", h.Auth.Google)
	authGroup.GET("/me", h.Auth.Me, bearer(identity))

	bookings := api.Group("/bookings")
	bookings.GET("", h.Bookings.All)
	bookings.GET("/available", h.Bookings.Available)
	bookings.POST("/create", h.Bookings.Create)
	bookings.PUT("/book", h.Bookings.Book)
	bookings.GET("/creator/:creatorId", h.Bookings.ByCreator)
	bookings.GET("/sme/:smeId", h.Bookings.BySME)
	bookings.POST("/resend-email", h.Bookings.Resend)
	bookings.POST("/cancel", h.Bookings.Cancel)
	bookings.POST("/notify-survey", h.Bookings.NotifySurvey)
	bookings.POST("/test-email", h.Diagnostics.TestEmail)
	bookings.POST("/simple-test-email", h.Diagnostics.SimpleTestEmail)
	bookings.POST("/debug-email", h.Diagnostics.DebugEmail)

	surveys := api.Group("/surveys")
	surveys.GET("", h.Surveys.List)
	surveys.POST("/generate", h.Surveys.Generate)
}

// bearer resolves "Authorization: Bearer <token>" to a *model.User stored under handler.ContextUserKey.
func bearer(identity service.IdentityService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.ContextUserKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return identity.Authenticate(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if !errors.Is(err, apperrors.ErrUnauthorized) {
				err = apperrors.Unauthorized("Not authorized, no token")
			}
			return toHTTPError(err)
		},
	})
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := logging.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = logging.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func toHTTPError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// ErrorHandler renders every error as {"success": false, "error": ..., "code": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = toHTTPError(err)
	}

	status := he.Code
	var body apperrors.ErrorResponse
	switch m := he.Message.(type) {
	case apperrors.ErrorResponse:
		body = m
	case string:
		body = apperrors.ErrorResponse{Error: m}
	case error:
		body = apperrors.ErrorResponse{Error: m.Error()}
	default:
		body = apperrors.ErrorResponse{Error: http.StatusText(status)}
	}
	body.Success = false

	if status >= http.StatusInternalServerError {
		cause := err
		if he.Internal != nil {
			cause = he.Internal
		}
		logging.Ctx(c.Request().Context()).Error().Err(cause).
			Int("status", status).
			Str("path", c.Path()).
			Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logging.Ctx(c.Request().Context()).Warn().Err(err).Msg("write error response")
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
