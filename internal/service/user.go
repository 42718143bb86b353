package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
	"github.com/senservices/backend/pkg/hash"
)

type userService struct {
	userRepository repository.Users
	hasher         hash.PasswordHasher
}

func newUserService(userRepository repository.Users, hasher hash.PasswordHasher) *userService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
	}
}

type RegisterUserInput struct {
	CNI           string
	Phone         string
	FirstName     string
	LastName      string
	BirthDate     *time.Time
	Job           string
	Sex           string
	Email         string
	Password      string
	Role          domain.Role
	InstitutionID *uuid.UUID
}

// Register creates the base profile. Phone numbers are unique across all
// roles; the stored password is always the salted hash.
func (s *userService) Register(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if _, err := s.userRepository.GetByPhone(ctx, input.Phone); err == nil {
		return nil, ErrPhoneAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by phone failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id failed: %w", err)
	}

	user := &domain.User{
		ID:        userID,
		CNI:       input.CNI,
		Phone:     input.Phone,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Job: sql.NullString{
			String: input.Job,
			Valid:  input.Job != "",
		},
		Sex: sql.NullString{
			String: input.Sex,
			Valid:  input.Sex != "",
		},
		Email: sql.NullString{
			String: input.Email,
			Valid:  input.Email != "",
		},
		Password:      passwordHash,
		Role:          input.Role,
		InstitutionID: input.InstitutionID,
	}
	if input.BirthDate != nil {
		user.BirthDate = sql.NullTime{Time: *input.BirthDate, Valid: true}
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrPhoneAlreadyExists
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	return user, nil
}

func (s *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}
	return user, nil
}

func (s *userService) GetAllByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.userRepository.GetAllByRole(ctx, role)
}

type UpdateUserInput struct {
	ID            uuid.UUID
	Phone         string
	FirstName     string
	LastName      string
	BirthDate     *time.Time
	Job           string
	Sex           string
	Email         string
	InstitutionID *uuid.UUID
}

func (s *userService) Update(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	if input.Phone != "" && input.Phone != user.Phone {
		if _, err := s.userRepository.GetByPhone(ctx, input.Phone); err == nil {
			return nil, ErrPhoneAlreadyExists
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get user by phone failed: %w", err)
		}
		user.Phone = input.Phone
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.BirthDate != nil {
		user.BirthDate = sql.NullTime{Time: *input.BirthDate, Valid: true}
	}
	if input.Job != "" {
		user.Job = sql.NullString{String: input.Job, Valid: true}
	}
	if input.Sex != "" {
		user.Sex = sql.NullString{String: input.Sex, Valid: true}
	}
	if input.Email != "" {
		user.Email = sql.NullString{String: input.Email, Valid: true}
	}
	if input.InstitutionID != nil {
		user.InstitutionID = input.InstitutionID
	}

	if err := s.userRepository.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrPhoneAlreadyExists
		}
		return nil, fmt.Errorf("update user failed: %w", err)
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user failed: %w", err)
	}
	return nil
}
