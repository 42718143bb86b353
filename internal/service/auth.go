package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
	"github.com/senservices/backend/internal/sms"
	"github.com/senservices/backend/pkg/auth"
	"github.com/senservices/backend/pkg/hash"
	"github.com/senservices/backend/pkg/otp"
)

// AuthResult carries the signed token together with its TTL so the handler
// can set the cookie max age, plus the authenticated profile.
type AuthResult struct {
	Token    string
	TokenTTL time.Duration
	User     *domain.User
}

func principalFromUser(user *domain.User) auth.Principal {
	return auth.Principal{
		UserID:    user.ID,
		CNI:       user.CNI,
		Email:     user.Email.String,
		Role:      string(user.Role),
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

type citizenAuthService struct {
	users             Users
	accounts          Accounts
	userRepository    repository.Users
	passwordResetRepo repository.PasswordResets
	hasher            hash.PasswordHasher
	tokenManager      auth.TokenManager
	otpGenerator      otp.Generator
	smsSender         sms.Sender
	authConfig        config.AuthConfig
}

func newCitizenAuthService(
	users Users,
	accounts Accounts,
	userRepository repository.Users,
	passwordResetRepo repository.PasswordResets,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	smsSender sms.Sender,
	authConfig config.AuthConfig,
) *citizenAuthService {
	return &citizenAuthService{
		users:             users,
		accounts:          accounts,
		userRepository:    userRepository,
		passwordResetRepo: passwordResetRepo,
		hasher:            hasher,
		tokenManager:      tokenManager,
		otpGenerator:      otpGenerator,
		smsSender:         smsSender,
		authConfig:        authConfig,
	}
}

type CitizenSignUpInput struct {
	CNI       string
	Phone     string
	FirstName string
	LastName  string
	BirthDate *time.Time
	Job       string
	Sex       string
	Password  string
}

// SignUp registers the base profile, opens the credential account and sends
// the verification OTP, then issues a token for the still-unconfirmed
// citizen. The uniqueness key is the CNI.
func (s *citizenAuthService) SignUp(ctx context.Context, input CitizenSignUpInput) (*AuthResult, error) {
	if _, err := s.userRepository.GetByCNI(ctx, input.CNI); err == nil {
		return nil, ErrCNIAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by cni failed: %w", err)
	}

	user, err := s.users.Register(ctx, RegisterUserInput{
		CNI:       input.CNI,
		Phone:     input.Phone,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: input.BirthDate,
		Job:       input.Job,
		Sex:       input.Sex,
		Password:  input.Password,
		Role:      domain.RoleCitoyen,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.accounts.Create(ctx, input.CNI, input.Password, user.ID); err != nil {
		return nil, err
	}

	if err := s.accounts.GenerateAndSendOtp(ctx, input.CNI); err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *citizenAuthService) SignIn(ctx context.Context, cni string, password string) (*AuthResult, error) {
	account, err := s.accounts.Login(ctx, cni, password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.GetOneByID(ctx, account.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	return s.issue(user)
}

func (s *citizenAuthService) issue(user *domain.User) (*AuthResult, error) {
	token, ttl, err := s.tokenManager.NewJWT(principalFromUser(user))
	if err != nil {
		return nil, fmt.Errorf("issue token failed: %w", err)
	}

	return &AuthResult{Token: token, TokenTTL: ttl, User: user}, nil
}

// RequestPasswordReset issues a single-use token and sends it to the phone
// on record. It succeeds silently when the CNI is unknown so the endpoint
// does not leak which CNIs are registered.
func (s *citizenAuthService) RequestPasswordReset(ctx context.Context, cni string) error {
	user, err := s.userRepository.GetByCNI(ctx, cni)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get user by cni failed: %w", err)
	}

	resetID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate reset id failed: %w", err)
	}

	reset := &domain.PasswordReset{
		ID:        resetID,
		UserID:    user.ID,
		Token:     s.otpGenerator.RandomSecret(s.authConfig.ResetTokenLength),
		ExpiresAt: time.Now().Add(s.authConfig.ResetTokenTTL),
	}

	if err := s.passwordResetRepo.Create(ctx, reset); err != nil {
		return fmt.Errorf("create password reset failed: %w", err)
	}

	content := fmt.Sprintf("Votre code de réinitialisation est %s", reset.Token)
	if err := s.smsSender.SendAndRecord(ctx, content, []string{user.Phone}); err != nil {
		return fmt.Errorf("send reset sms failed: %w", err)
	}

	return nil
}

func (s *citizenAuthService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	reset, err := s.passwordResetRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("get password reset failed: %w", err)
	}

	if reset.ConsumedAt != nil {
		return ErrResetTokenInvalid
	}

	if time.Now().After(reset.ExpiresAt) {
		return ErrResetTokenExpired
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, reset.UserID, newHash); err != nil {
		return fmt.Errorf("update user password failed: %w", err)
	}

	if err := s.passwordResetRepo.Consume(ctx, reset.ID); err != nil {
		return fmt.Errorf("consume password reset failed: %w", err)
	}

	return nil
}

type agentAuthService struct {
	userRepository        repository.Users
	institutionRepository repository.Institutions
	hasher                hash.PasswordHasher
	tokenManager          auth.TokenManager
}

func newAgentAuthService(
	userRepository repository.Users,
	institutionRepository repository.Institutions,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
) *agentAuthService {
	return &agentAuthService{
		userRepository:        userRepository,
		institutionRepository: institutionRepository,
		hasher:                hasher,
		tokenManager:          tokenManager,
	}
}

type AgentSignUpInput struct {
	CNI           string
	Phone         string
	FirstName     string
	LastName      string
	Email         string
	Password      string
	InstitutionID uuid.UUID
}

// SignUp creates a fonctionnaire profile. The uniqueness key is the email;
// the assigned institution must exist.
func (s *agentAuthService) SignUp(ctx context.Context, input AgentSignUpInput) (*AuthResult, error) {
	if _, err := s.userRepository.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	if _, err := s.institutionRepository.GetOneByID(ctx, input.InstitutionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("get institution by id failed: %w", err)
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
		ID:            userID,
		CNI:           input.CNI,
		Phone:         input.Phone,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Password:      passwordHash,
		Role:          domain.RoleFonctionnaire,
		InstitutionID: &input.InstitutionID,
	}
	user.Email.String = input.Email
	user.Email.Valid = true

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	return s.issue(user)
}

func (s *agentAuthService) SignIn(ctx context.Context, email string, password string) (*AuthResult, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	if !s.hasher.Compare(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *agentAuthService) issue(user *domain.User) (*AuthResult, error) {
	token, ttl, err := s.tokenManager.NewJWT(principalFromUser(user))
	if err != nil {
		return nil, fmt.Errorf("issue token failed: %w", err)
	}

	return &AuthResult{Token: token, TokenTTL: ttl, User: user}, nil
}
