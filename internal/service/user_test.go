package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository/mocks"
	"github.com/senservices/backend/pkg/hash"
)

func TestUserService_Register(t *testing.T) {
	userRepo := new(mocks.Users)
	userRepo.On("GetByPhone", mock.Anything, "771234567").Return(nil, domain.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	s := newUserService(userRepo, hash.NewSHA256Hasher("test-salt"))

	user, err := s.Register(context.Background(), RegisterUserInput{
		CNI:       "1234567890123",
		Phone:     "771234567",
		FirstName: "Awa",
		LastName:  "Diop",
		Password:  "motdepasse",
		Role:      domain.RoleCitoyen,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, domain.RoleCitoyen, user.Role)
	assert.NotEqual(t, "motdepasse", user.Password)
	assert.False(t, user.Email.Valid)
}

func TestUserService_Register_PhoneTaken(t *testing.T) {
	userRepo := new(mocks.Users)
	userRepo.On("GetByPhone", mock.Anything, "771234567").
		Return(&domain.User{ID: uuid.New(), Phone: "771234567"}, nil)

	s := newUserService(userRepo, hash.NewSHA256Hasher("test-salt"))

	_, err := s.Register(context.Background(), RegisterUserInput{
		CNI:      "1234567890123",
		Phone:    "771234567",
		Password: "motdepasse",
		Role:     domain.RoleCitoyen,
	})
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Update_PhoneTaken(t *testing.T) {
	userRepo := new(mocks.Users)
	userID := uuid.New()

	userRepo.On("GetOneByID", mock.Anything, userID).
		Return(&domain.User{ID: userID, Phone: "771234567"}, nil)
	userRepo.On("GetByPhone", mock.Anything, "779999999").
		Return(&domain.User{ID: uuid.New(), Phone: "779999999"}, nil)

	s := newUserService(userRepo, hash.NewSHA256Hasher("test-salt"))

	_, err := s.Update(context.Background(), UpdateUserInput{ID: userID, Phone: "779999999"})
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestUserService_GetOneByID_NotFound(t *testing.T) {
	userRepo := new(mocks.Users)
	userID := uuid.New()
	userRepo.On("GetOneByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	s := newUserService(userRepo, hash.NewSHA256Hasher("test-salt"))

	_, err := s.GetOneByID(context.Background(), userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
