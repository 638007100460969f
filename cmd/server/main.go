package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"outlaw/docs"
	"outlaw/internal/auth"
	"outlaw/internal/cache"
	"outlaw/internal/config"
	"outlaw/internal/db"
	"outlaw/internal/handler"
	"outlaw/internal/logging"
	"outlaw/internal/middleware"
	"outlaw/internal/notify"
	"outlaw/internal/repository"
	"outlaw/internal/router"
	"outlaw/internal/service"
)

// @title Outlaw Survey & Booking API
// @version 1.0
// @description Survey generation, SME interview booking and email notifications.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logging.Fatal().Err(err).Msg("database init")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		logging.Fatal().Err(err).Msg("database migrate")
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logging.Fatal().Err(err).Msg("database handle")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Repositories
	slotRepo := repository.NewTimeSlotRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	surveyRepo := repository.NewSurveyRepository(gormDB)

	// Mail: the service still starts without credentials; sends then fail with a validation error.
	var transport notify.Transport
	smtpTransport, err := notify.NewSMTPTransport(cfg.Mail)
	if err != nil {
		logging.Warn().Err(err).Msg("email transporter not initialized")
	} else {
		transport = smtpTransport
	}
	notifier := notify.NewNotifier(transport, notify.Options{
		FromName:    cfg.Mail.FromName,
		FromAddress: cfg.Mail.User,
		Environment: cfg.Environment,
		ServerURL:   cfg.ServerURL,
	})
	if notifier.Ready() {
		go verifyMail(notifier)
	}

	// Auth
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	google := auth.NewGoogleVerifier(cfg.GoogleClientID, &http.Client{Timeout: 10 * time.Second})
	if google == nil {
		logging.Info().Msg("GOOGLE_CLIENT_ID not set, Google ID tokens will be rejected")
	}

	// Services
	identityService := service.NewIdentityService(userRepo, jwtService, google, cacheClient)
	bookingService := service.NewBookingService(slotRepo, userRepo, notifier)
	surveyService := service.NewSurveyService(surveyRepo, nil)

	authLimiter := middleware.NewRateLimiter(5, 10)
	defer authLimiter.Close()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Handlers{
		Auth:        handler.NewAuthHandler(identityService),
		Bookings:    handler.NewBookingHandler(bookingService),
		Diagnostics: handler.NewDiagnosticsHandler(notifier, cfg.Mail, cfg.Environment),
		Surveys:     handler.NewSurveyHandler(surveyService),
		Health:      handler.NewHealthHandler(sqlDB, handler.PingFunc(cacheClient.Ping)),
	}, identityService, authLimiter)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	logging.Info().Str("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html").
		Msg("Swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		logging.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server start")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("server shutdown")
	}
	logging.Info().Msg("server stopped")
}

// verifyMail checks the SMTP credentials at startup. Failures are logged only.
func verifyMail(n *notify.Notifier) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()
	if err := n.Verify(ctx); err != nil {
		logging.Error().Err(err).Msg("email transporter verification failed")
		return
	}
	logging.Info().Msg("email server is ready to send messages")
}
