package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"outlaw/internal/auth"
	"outlaw/internal/cache"
	apperrors "outlaw/internal/errors"
	"outlaw/internal/logging"
	"outlaw/internal/model"
	"outlaw/internal/repository"
)

const userCacheTTL = 5 * time.Minute

var validate = validator.New()

// AuthResult is a user together with a freshly issued bearer token.
type AuthResult struct {
	User  *model.User
	Token string
}

// GoogleAuthInput is either a Google ID token or, for older clients, the raw profile fields.
type GoogleAuthInput struct {
	Token    string
	GoogleID string
	Email    string
	Name     string
}

// IdentityService handles registration, login and bearer token checks.
type IdentityService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GoogleAuth(ctx context.Context, in GoogleAuthInput) (*AuthResult, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type identityService struct {
	users  repository.UserRepository
	jwt    *auth.JWTService
	google auth.GoogleVerifier
	cache  *cache.Client
}

// NewIdentityService builds an IdentityService. google and cache may be nil.
func NewIdentityService(users repository.UserRepository, jwt *auth.JWTService, google auth.GoogleVerifier, cache *cache.Client) IdentityService {
	return &identityService{users: users, jwt: jwt, google: google, cache: cache}
}

func (s *identityService) cacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

func (s *identityService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.Validation("Please provide name, email and password")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, apperrors.Validation("Please provide a valid email")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.Conflict("User already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	logging.Ctx(ctx).Info().Str("user_id", user.ID).Msg("user registered")

	return s.issue(user)
}

func (s *identityService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("Please provide email and password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	return s.issue(user)
}

func (s *identityService) GoogleAuth(ctx context.Context, in GoogleAuthInput) (*AuthResult, error) {
	identity := auth.GoogleIdentity{Subject: in.GoogleID, Email: in.Email, Name: in.Name}

	if in.Token != "" {
		if s.google == nil {
			return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "Google authentication failed", auth.ErrGoogleNotConfigured)
		}
		verified, err := s.google.Verify(ctx, in.Token)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("google id token rejected")
			return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "Google authentication failed", err)
		}
		identity = *verified
	} else if identity.Subject == "" || identity.Email == "" {
		return nil, apperrors.Validation("Missing required Google authentication data")
	}

	user, err := s.resolveGoogleUser(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// resolveGoogleUser finds the user by Google id, then by email (linking the Google id),
// and creates one with an unusable password as a last resort.
func (s *identityService) resolveGoogleUser(ctx context.Context, id auth.GoogleIdentity) (*model.User, error) {
	user, err := s.users.FindByGoogleID(ctx, id.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user by google id: %w", err)
	}

	if id.Email != "" {
		user, err = s.users.FindByEmail(ctx, id.Email)
		switch {
		case err == nil:
			if err := s.users.SetGoogleID(ctx, user.ID, id.Subject); err != nil {
				return nil, fmt.Errorf("link google id: %w", err)
			}
			_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
			googleID := id.Subject
			user.GoogleID = &googleID
			logging.Ctx(ctx).Info().Str("user_id", user.ID).Msg("google account linked")
			return user, nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("find user by email: %w", err)
		}
	}

	name := id.Name
	if name == "" {
		name, _, _ = strings.Cut(id.Email, "@")
	}
	hash, err := auth.HashPassword(auth.RandomPassword())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	googleID := id.Subject
	user = &model.User{Name: name, Email: id.Email, PasswordHash: hash, GoogleID: &googleID}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	logging.Ctx(ctx).Info().Str("user_id", user.ID).Msg("user created from google sign-in")
	return user, nil
}

func (s *identityService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("Not authorized, no token")
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "Not authorized, token failed", err)
	}

	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(claims.UserID), &cached) {
		return &cached, nil
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Unauthorized("Not authorized, user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	_ = s.cache.SetJSON(ctx, s.cacheKey(user.ID), user, userCacheTTL)
	return user, nil
}

func (s *identityService) issue(user *model.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
