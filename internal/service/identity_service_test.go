package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"outlaw/internal/auth"
	apperrors "outlaw/internal/errors"
	"outlaw/internal/model"
)

func assignID(id string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = id
	}
}

func TestIdentityService_Register(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantKind  error
	}{
		{
			name:     "successful registration",
			userName: "Test User",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Run(assignID("u1"))
			},
		},
		{
			name:     "user already exists",
			userName: "Existing",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			wantKind: apperrors.ErrConflict,
		},
		{
			name:     "malformed email",
			userName: "Test",
			email:    "not-an-email",
			password: "password123",
			wantKind: apperrors.ErrValidation,
		},
		{
			name:     "missing password",
			userName: "Test",
			email:    "test@example.com",
			wantKind: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			jwtService := auth.NewJWTService("test-secret")
			svc := NewIdentityService(repo, jwtService, nil, nil)

			res, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, res.User.Email)
				assert.NotEqual(t, tt.password, res.User.PasswordHash)
				assert.True(t, auth.CheckPassword(res.User.PasswordHash, tt.password))

				claims, err := jwtService.ValidateToken(res.Token)
				require.NoError(t, err)
				assert.Equal(t, "u1", claims.UserID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestIdentityService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	stored := &model.User{ID: "u1", Email: "test@example.com", PasswordHash: hash}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantKind  error
		wantErr   bool
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "nope",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			wantKind: apperrors.ErrUnauthorized,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantKind: apperrors.ErrUnauthorized,
		},
		{
			name:     "missing fields",
			email:    "",
			password: "password123",
			wantKind: apperrors.ErrValidation,
		},
		{
			name:     "database failure is not an auth error",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			svc := NewIdentityService(repo, auth.NewJWTService("test-secret"), nil, nil)

			res, err := svc.Login(context.Background(), tt.email, tt.password)

			switch {
			case tt.wantKind != nil:
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Nil(t, res)
			case tt.wantErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
			default:
				require.NoError(t, err)
				assert.Equal(t, "u1", res.User.ID)
				assert.NotEmpty(t, res.Token)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestIdentityService_GoogleAuth(t *testing.T) {
	t.Run("verified token links existing email account", func(t *testing.T) {
		repo := new(MockUserRepository)
		google := new(MockGoogleVerifier)
		google.On("Verify", mock.Anything, "id-token").
			Return(&auth.GoogleIdentity{Subject: "g-1", Email: "ada@example.com", Name: "Ada"}, nil)
		repo.On("FindByGoogleID", mock.Anything, "g-1").Return(nil, gorm.ErrRecordNotFound)
		repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(&model.User{ID: "u1", Email: "ada@example.com"}, nil)
		repo.On("SetGoogleID", mock.Anything, "u1", "g-1").Return(nil)

		svc := NewIdentityService(repo, auth.NewJWTService("s"), google, nil)
		res, err := svc.GoogleAuth(context.Background(), GoogleAuthInput{Token: "id-token", GoogleID: "spoofed"})
		require.NoError(t, err)
		assert.Equal(t, "u1", res.User.ID)
		require.NotNil(t, res.User.GoogleID)
		assert.Equal(t, "g-1", *res.User.GoogleID)
		repo.AssertExpectations(t)
		google.AssertExpectations(t)
	})

	t.Run("rejected token", func(t *testing.T) {
		google := new(MockGoogleVerifier)
		google.On("Verify", mock.Anything, "bad").Return(nil, errors.New("audience mismatch"))
		svc := NewIdentityService(new(MockUserRepository), auth.NewJWTService("s"), google, nil)

		_, err := svc.GoogleAuth(context.Background(), GoogleAuthInput{Token: "bad"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("token without configured verifier", func(t *testing.T) {
		svc := NewIdentityService(new(MockUserRepository), auth.NewJWTService("s"), nil, nil)
		_, err := svc.GoogleAuth(context.Background(), GoogleAuthInput{Token: "id-token"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, err, auth.ErrGoogleNotConfigured)
	})

	t.Run("legacy payload requires google id and email", func(t *testing.T) {
		svc := NewIdentityService(new(MockUserRepository), auth.NewJWTService("s"), nil, nil)
		_, err := svc.GoogleAuth(context.Background(), GoogleAuthInput{GoogleID: "g-1"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("legacy payload returns existing google user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByGoogleID", mock.Anything, "g-1").Return(&model.User{ID: "u7", Email: "x@example.com"}, nil)
		svc := NewIdentityService(repo, auth.NewJWTService("s"), nil, nil)

		res, err := svc.GoogleAuth(context.Background(), GoogleAuthInput{GoogleID: "g-1", Email: "x@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "u7", res.User.ID)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("unknown user is created with unusable password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByGoogleID", mock.Anything, "g-2").Return(nil, gorm.ErrRecordNotFound)
		repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@example.com" && u.Name == "new" && u.GoogleID != nil && *u.GoogleID == "g-2" && u.PasswordHash != ""
		})).Return(nil).Run(assignID("u9"))
		svc := NewIdentityService(repo, auth.NewJWTService("s"), nil, nil)

		res, err := svc.GoogleAuth(context.Background(), GoogleAuthInput{GoogleID: "g-2", Email: "new@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "u9", res.User.ID)
		repo.AssertExpectations(t)
	})
}

func TestIdentityService_Authenticate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	token, err := jwtService.GenerateToken("u1")
	require.NoError(t, err)
	ghost, err := jwtService.GenerateToken("deleted")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "u1").Return(&model.User{ID: "u1", Email: "a@example.com"}, nil)
	repo.On("FindByID", mock.Anything, "deleted").Return(nil, gorm.ErrRecordNotFound)
	svc := NewIdentityService(repo, jwtService, nil, nil)

	user, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)

	for name, tok := range map[string]string{"empty": "", "garbage": "abc.def.ghi", "user gone": ghost} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), tok)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}
}
