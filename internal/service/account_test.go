package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository/mocks"
	"github.com/senservices/backend/pkg/hash"
)

func newTestAccountService(
	accountRepo *mocks.Accounts,
	userRepo *mocks.Users,
	smsSender *smsSenderMock,
	otpGenerator *otpGeneratorMock,
) *accountService {
	return newAccountService(
		accountRepo,
		userRepo,
		hash.NewSHA256Hasher("test-salt"),
		otpGenerator,
		smsSender,
		nil,
		config.AuthConfig{},
	)
}

func TestAccountService_Create_AlreadyExists(t *testing.T) {
	accountRepo := new(mocks.Accounts)
	userID := uuid.New()

	accountRepo.On("GetByUserID", mock.Anything, userID).
		Return(&domain.Account{ID: uuid.New(), UserID: userID}, nil)

	s := newTestAccountService(accountRepo, new(mocks.Users), new(smsSenderMock), new(otpGeneratorMock))

	_, err := s.Create(context.Background(), "1234567890123", "motdepasse", userID)
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
	accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Create_DuplicateRace(t *testing.T) {
	accountRepo := new(mocks.Accounts)
	userID := uuid.New()

	accountRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domain.ErrNotFound)
	accountRepo.On("GetByCNI", mock.Anything, "1234567890123").Return(nil, domain.ErrNotFound)
	accountRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Account")).
		Return(domain.ErrDuplicateEntry)

	s := newTestAccountService(accountRepo, new(mocks.Users), new(smsSenderMock), new(otpGeneratorMock))

	_, err := s.Create(context.Background(), "1234567890123", "motdepasse", userID)
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
}

func TestAccountService_Create_HashesPassword(t *testing.T) {
	accountRepo := new(mocks.Accounts)
	userID := uuid.New()

	accountRepo.On("GetByUserID", mock.Anything, userID).Return(nil, domain.ErrNotFound)
	accountRepo.On("GetByCNI", mock.Anything, "1234567890123").Return(nil, domain.ErrNotFound)
	accountRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Account")).Return(nil)

	s := newTestAccountService(accountRepo, new(mocks.Users), new(smsSenderMock), new(otpGeneratorMock))

	account, err := s.Create(context.Background(), "1234567890123", "motdepasse", userID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.NotEqual(t, "motdepasse", account.Password)
	assert.False(t, account.Confirmed)
}

func TestAccountService_GenerateAndSendOtp(t *testing.T) {
	accountRepo := new(mocks.Accounts)
	userRepo := new(mocks.Users)
	smsSender := new(smsSenderMock)
	otpGenerator := new(otpGeneratorMock)

	accountID := uuid.New()
	userID := uuid.New()

	accountRepo.On("GetByCNI", mock.Anything, "1234567890123").
		Return(&domain.Account{ID: accountID, UserID: userID, CNI: "1234567890123"}, nil)
	otpGenerator.On("RandomCode").Return("4321", nil)
	accountRepo.On("SetOtpHash", mock.Anything, accountID, mock.AnythingOfType("string")).Return(nil)
	userRepo.On("GetOneByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, Phone: "771234567"}, nil)
	smsSender.On("SendAndRecord", mock.Anything, "Votre code de vérification est 4321", []string{"771234567"}).
		Return(nil)

	s := newTestAccountService(accountRepo, userRepo, smsSender, otpGenerator)

	err := s.GenerateAndSendOtp(context.Background(), "1234567890123")
	require.NoError(t, err)

	smsSender.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
}

func TestAccountService_VerifyOtp(t *testing.T) {
	hasher := hash.NewSHA256Hasher("test-salt")
	codeHash, err := hasher.Hash("4321")
	require.NoError(t, err)

	accountID := uuid.New()

	cases := []struct {
		name    string
		account *domain.Account
		code    string
		wantErr error
	}{
		{
			name:    "valid code confirms the account",
			account: &domain.Account{ID: accountID, OtpHash: sql.NullString{String: codeHash, Valid: true}},
			code:    "4321",
			wantErr: nil,
		},
		{
			name:    "wrong code",
			account: &domain.Account{ID: accountID, OtpHash: sql.NullString{String: codeHash, Valid: true}},
			code:    "1111",
			wantErr: ErrOtpMismatch,
		},
		{
			name:    "no pending code",
			account: &domain.Account{ID: accountID},
			code:    "4321",
			wantErr: ErrOtpNotIssued,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			accountRepo := new(mocks.Accounts)
			accountRepo.On("GetByCNI", mock.Anything, "1234567890123").Return(tc.account, nil)
			accountRepo.On("SetConfirmed", mock.Anything, accountID).Return(nil)

			s := newTestAccountService(accountRepo, new(mocks.Users), new(smsSenderMock), new(otpGeneratorMock))

			err := s.VerifyOtp(context.Background(), "1234567890123", tc.code)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				accountRepo.AssertNotCalled(t, "SetConfirmed", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			accountRepo.AssertCalled(t, "SetConfirmed", mock.Anything, accountID)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	hasher := hash.NewSHA256Hasher("test-salt")
	passwordHash, err := hasher.Hash("motdepasse")
	require.NoError(t, err)

	accountRepo := new(mocks.Accounts)
	accountRepo.On("GetByCNI", mock.Anything, "1234567890123").
		Return(&domain.Account{ID: uuid.New(), CNI: "1234567890123", Password: passwordHash}, nil)
	accountRepo.On("GetByCNI", mock.Anything, "9999999999999").Return(nil, domain.ErrNotFound)

	s := newTestAccountService(accountRepo, new(mocks.Users), new(smsSenderMock), new(otpGeneratorMock))

	_, err = s.Login(context.Background(), "1234567890123", "motdepasse")
	assert.NoError(t, err)

	_, err = s.Login(context.Background(), "1234567890123", "mauvais")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(context.Background(), "9999999999999", "motdepasse")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountService_ChangePassword(t *testing.T) {
	hasher := hash.NewSHA256Hasher("test-salt")
	oldHash, err := hasher.Hash("ancien")
	require.NoError(t, err)

	accountID := uuid.New()
	userID := uuid.New()

	accountRepo := new(mocks.Accounts)
	userRepo := new(mocks.Users)

	accountRepo.On("GetByUserID", mock.Anything, userID).
		Return(&domain.Account{ID: accountID, UserID: userID, Password: oldHash}, nil)
	accountRepo.On("UpdatePassword", mock.Anything, accountID, mock.AnythingOfType("string")).Return(nil)
	userRepo.On("UpdatePassword", mock.Anything, userID, mock.AnythingOfType("string")).Return(nil)

	s := newTestAccountService(accountRepo, userRepo, new(smsSenderMock), new(otpGeneratorMock))

	require.NoError(t, s.ChangePassword(context.Background(), userID, "ancien", "nouveau-mdp"))
	accountRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)

	err = s.ChangePassword(context.Background(), userID, "mauvais", "nouveau-mdp")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
