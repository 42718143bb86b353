package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository/mocks"
	"github.com/senservices/backend/pkg/auth"
	"github.com/senservices/backend/pkg/hash"
)

func newTestTokenManager(t *testing.T) auth.TokenManager {
	t.Helper()
	manager, err := auth.NewManager("test-signing-key", 48*time.Hour)
	require.NoError(t, err)
	return manager
}

func TestCitizenAuthService_SignUp_CNITaken(t *testing.T) {
	userRepo := new(mocks.Users)
	userRepo.On("GetByCNI", mock.Anything, "1234567890123").
		Return(&domain.User{ID: uuid.New(), CNI: "1234567890123"}, nil)

	s := newCitizenAuthService(
		nil, nil,
		userRepo,
		new(mocks.PasswordResets),
		hash.NewSHA256Hasher("test-salt"),
		newTestTokenManager(t),
		new(otpGeneratorMock),
		new(smsSenderMock),
		config.AuthConfig{},
	)

	_, err := s.SignUp(context.Background(), CitizenSignUpInput{
		CNI:      "1234567890123",
		Phone:    "771234567",
		Password: "motdepasse",
	})
	assert.ErrorIs(t, err, ErrCNIAlreadyExists)
}

func TestCitizenAuthService_SignIn(t *testing.T) {
	hasher := hash.NewSHA256Hasher("test-salt")
	passwordHash, err := hasher.Hash("motdepasse")
	require.NoError(t, err)

	userID := uuid.New()

	accountRepo := new(mocks.Accounts)
	accountRepo.On("GetByCNI", mock.Anything, "1234567890123").
		Return(&domain.Account{ID: uuid.New(), UserID: userID, CNI: "1234567890123", Password: passwordHash}, nil)

	userRepo := new(mocks.Users)
	userRepo.On("GetOneByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, CNI: "1234567890123", Role: domain.RoleCitoyen}, nil)

	accounts := newAccountService(accountRepo, userRepo, hasher, new(otpGeneratorMock), new(smsSenderMock), nil, config.AuthConfig{})
	tokenManager := newTestTokenManager(t)

	s := newCitizenAuthService(
		nil, accounts,
		userRepo,
		new(mocks.PasswordResets),
		hasher,
		tokenManager,
		new(otpGeneratorMock),
		new(smsSenderMock),
		config.AuthConfig{},
	)

	result, err := s.SignIn(context.Background(), "1234567890123", "motdepasse")
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, result.TokenTTL)
	assert.NotEmpty(t, result.Token)

	principal, err := tokenManager.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, string(domain.RoleCitoyen), principal.Role)
}

func TestCitizenAuthService_RequestPasswordReset_UnknownCNI(t *testing.T) {
	userRepo := new(mocks.Users)
	userRepo.On("GetByCNI", mock.Anything, "9999999999999").Return(nil, domain.ErrNotFound)

	smsSender := new(smsSenderMock)

	s := newCitizenAuthService(
		nil, nil,
		userRepo,
		new(mocks.PasswordResets),
		hash.NewSHA256Hasher("test-salt"),
		newTestTokenManager(t),
		new(otpGeneratorMock),
		smsSender,
		config.AuthConfig{},
	)

	// unknown CNI stays silent so the endpoint does not leak registrations
	err := s.RequestPasswordReset(context.Background(), "9999999999999")
	assert.NoError(t, err)
	smsSender.AssertNotCalled(t, "SendAndRecord", mock.Anything, mock.Anything, mock.Anything)
}

func TestCitizenAuthService_RequestPasswordReset(t *testing.T) {
	userID := uuid.New()

	userRepo := new(mocks.Users)
	userRepo.On("GetByCNI", mock.Anything, "1234567890123").
		Return(&domain.User{ID: userID, CNI: "1234567890123", Phone: "771234567"}, nil)

	resetRepo := new(mocks.PasswordResets)
	resetRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PasswordReset")).Return(nil)

	otpGenerator := new(otpGeneratorMock)
	otpGenerator.On("RandomSecret", 16).Return("RESETSECRET12345")

	smsSender := new(smsSenderMock)
	smsSender.On("SendAndRecord", mock.Anything, "Votre code de réinitialisation est RESETSECRET12345", []string{"771234567"}).
		Return(nil)

	s := newCitizenAuthService(
		nil, nil,
		userRepo,
		resetRepo,
		hash.NewSHA256Hasher("test-salt"),
		newTestTokenManager(t),
		otpGenerator,
		smsSender,
		config.AuthConfig{ResetTokenLength: 16, ResetTokenTTL: 15 * time.Minute},
	)

	require.NoError(t, s.RequestPasswordReset(context.Background(), "1234567890123"))
	smsSender.AssertExpectations(t)
	resetRepo.AssertExpectations(t)
}

func TestCitizenAuthService_ResetPassword(t *testing.T) {
	userID := uuid.New()
	resetID := uuid.New()
	consumedAt := time.Now().Add(-time.Minute)

	cases := []struct {
		name    string
		reset   *domain.PasswordReset
		wantErr error
	}{
		{
			name: "valid token",
			reset: &domain.PasswordReset{
				ID:        resetID,
				UserID:    userID,
				ExpiresAt: time.Now().Add(10 * time.Minute),
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			reset: &domain.PasswordReset{
				ID:        resetID,
				UserID:    userID,
				ExpiresAt: time.Now().Add(-time.Minute),
			},
			wantErr: ErrResetTokenExpired,
		},
		{
			name: "consumed token",
			reset: &domain.PasswordReset{
				ID:         resetID,
				UserID:     userID,
				ExpiresAt:  time.Now().Add(10 * time.Minute),
				ConsumedAt: &consumedAt,
			},
			wantErr: ErrResetTokenInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			userRepo := new(mocks.Users)
			userRepo.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)

			resetRepo := new(mocks.PasswordResets)
			resetRepo.On("GetByToken", mock.Anything, "RESETSECRET12345").Return(tc.reset, nil)
			resetRepo.On("Consume", mock.Anything, resetID).Return(nil)

			s := newCitizenAuthService(
				nil, nil,
				userRepo,
				resetRepo,
				hash.NewSHA256Hasher("test-salt"),
				newTestTokenManager(t),
				new(otpGeneratorMock),
				new(smsSenderMock),
				config.AuthConfig{},
			)

			err := s.ResetPassword(context.Background(), "RESETSECRET12345", "nouveau-mdp")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			resetRepo.AssertCalled(t, "Consume", mock.Anything, resetID)
		})
	}
}

func TestAgentAuthService_SignUp_EmailTaken(t *testing.T) {
	userRepo := new(mocks.Users)
	userRepo.On("GetByEmail", mock.Anything, "agent@exemple.sn").
		Return(&domain.User{ID: uuid.New()}, nil)

	s := newAgentAuthService(userRepo, new(mocks.Institutions), hash.NewSHA256Hasher("test-salt"), newTestTokenManager(t))

	_, err := s.SignUp(context.Background(), AgentSignUpInput{
		Email:         "agent@exemple.sn",
		Password:      "motdepasse",
		InstitutionID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAgentAuthService_SignUp_InstitutionMissing(t *testing.T) {
	institutionID := uuid.New()

	userRepo := new(mocks.Users)
	userRepo.On("GetByEmail", mock.Anything, "agent@exemple.sn").Return(nil, domain.ErrNotFound)

	institutionRepo := new(mocks.Institutions)
	institutionRepo.On("GetOneByID", mock.Anything, institutionID).Return(nil, domain.ErrNotFound)

	s := newAgentAuthService(userRepo, institutionRepo, hash.NewSHA256Hasher("test-salt"), newTestTokenManager(t))

	_, err := s.SignUp(context.Background(), AgentSignUpInput{
		Email:         "agent@exemple.sn",
		Password:      "motdepasse",
		InstitutionID: institutionID,
	})
	assert.ErrorIs(t, err, ErrInstitutionNotFound)
}

func TestAgentAuthService_SignIn_WrongPassword(t *testing.T) {
	hasher := hash.NewSHA256Hasher("test-salt")
	passwordHash, err := hasher.Hash("motdepasse")
	require.NoError(t, err)

	user := &domain.User{ID: uuid.New(), Role: domain.RoleFonctionnaire, Password: passwordHash}

	userRepo := new(mocks.Users)
	userRepo.On("GetByEmail", mock.Anything, "agent@exemple.sn").Return(user, nil)

	s := newAgentAuthService(userRepo, new(mocks.Institutions), hasher, newTestTokenManager(t))

	_, err = s.SignIn(context.Background(), "agent@exemple.sn", "mauvais")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
