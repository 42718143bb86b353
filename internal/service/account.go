package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
	"github.com/senservices/backend/internal/sms"
	"github.com/senservices/backend/pkg/hash"
	"github.com/senservices/backend/pkg/otp"
)

type accountService struct {
	accountRepository repository.Accounts
	userRepository    repository.Users
	hasher            hash.PasswordHasher
	otpGenerator      otp.Generator
	smsSender         sms.Sender
	redis             redis.UniversalClient
	authConfig        config.AuthConfig
}

func newAccountService(
	accountRepository repository.Accounts,
	userRepository repository.Users,
	hasher hash.PasswordHasher,
	otpGenerator otp.Generator,
	smsSender sms.Sender,
	redisClient redis.UniversalClient,
	authConfig config.AuthConfig,
) *accountService {
	return &accountService{
		accountRepository: accountRepository,
		userRepository:    userRepository,
		hasher:            hasher,
		otpGenerator:      otpGenerator,
		smsSender:         smsSender,
		redis:             redisClient,
		authConfig:        authConfig,
	}
}

// Create refuses a second non-deleted account for the same user or the same
// CNI. The pre-check gives the friendly error; the unique indexes on both
// columns close the race, surfacing as ErrDuplicateEntry.
func (s *accountService) Create(ctx context.Context, cni string, password string, userID uuid.UUID) (*domain.Account, error) {
	if _, err := s.accountRepository.GetByUserID(ctx, userID); err == nil {
		return nil, ErrAccountAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get account by user id failed: %w", err)
	}

	if _, err := s.accountRepository.GetByCNI(ctx, cni); err == nil {
		return nil, ErrAccountAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get account by cni failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	accountID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate account id failed: %w", err)
	}

	account := &domain.Account{
		ID:       accountID,
		UserID:   userID,
		CNI:      cni,
		Password: passwordHash,
	}

	if err := s.accountRepository.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrAccountAlreadyExists
		}
		return nil, fmt.Errorf("create account failed: %w", err)
	}

	return account, nil
}

func (s *accountService) GetAll(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepository.GetAll(ctx)
}

func (s *accountService) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by user id failed: %w", err)
	}
	return account, nil
}

func otpCooldownKey(cni string) string {
	return "otp:cooldown:" + cni
}

// GenerateAndSendOtp issues a fresh 4-digit code, stores only its hash and
// sends the clear code to the owner's phone. A redis cooldown key throttles
// resend storms per CNI.
func (s *accountService) GenerateAndSendOtp(ctx context.Context, cni string) error {
	account, err := s.accountRepository.GetByCNI(ctx, cni)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by cni failed: %w", err)
	}

	if s.redis != nil {
		ok, err := s.redis.SetNX(ctx, otpCooldownKey(cni), 1, s.authConfig.OtpResendCooldown).Result()
		if err != nil {
			return fmt.Errorf("otp cooldown check failed: %w", err)
		}
		if !ok {
			return ErrOtpCooldown
		}
	}

	code, err := s.otpGenerator.RandomCode()
	if err != nil {
		return fmt.Errorf("generate otp failed: %w", err)
	}

	codeHash, err := s.hasher.Hash(code)
	if err != nil {
		return fmt.Errorf("hash otp failed: %w", err)
	}

	if err := s.accountRepository.SetOtpHash(ctx, account.ID, codeHash); err != nil {
		return fmt.Errorf("store otp hash failed: %w", err)
	}

	user, err := s.userRepository.GetOneByID(ctx, account.UserID)
	if err != nil {
		return fmt.Errorf("get otp recipient failed: %w", err)
	}

	content := fmt.Sprintf("Votre code de vérification est %s", code)
	if err := s.smsSender.SendAndRecord(ctx, content, []string{user.Phone}); err != nil {
		return fmt.Errorf("send otp sms failed: %w", err)
	}

	return nil
}

// VerifyOtp compares the candidate code against the stored hash in constant
// time and flips the account to confirmed on success.
func (s *accountService) VerifyOtp(ctx context.Context, cni string, code string) error {
	account, err := s.accountRepository.GetByCNI(ctx, cni)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by cni failed: %w", err)
	}

	if !account.OtpHash.Valid || account.OtpHash.String == "" {
		return ErrOtpNotIssued
	}

	if !s.hasher.Compare(code, account.OtpHash.String) {
		return ErrOtpMismatch
	}

	if err := s.accountRepository.SetConfirmed(ctx, account.ID); err != nil {
		return fmt.Errorf("confirm account failed: %w", err)
	}

	return nil
}

func (s *accountService) Login(ctx context.Context, cni string, password string) (*domain.Account, error) {
	account, err := s.accountRepository.GetByCNI(ctx, cni)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by cni failed: %w", err)
	}

	if !s.hasher.Compare(password, account.Password) {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// ChangePassword re-validates the old password before updating both the
// account and the base user record.
func (s *accountService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword string, newPassword string) error {
	account, err := s.accountRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by user id failed: %w", err)
	}

	if !s.hasher.Compare(oldPassword, account.Password) {
		return ErrInvalidCredentials
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password failed: %w", err)
	}

	if err := s.accountRepository.UpdatePassword(ctx, account.ID, newHash); err != nil {
		return fmt.Errorf("update account password failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("update user password failed: %w", err)
	}

	return nil
}

func (s *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.accountRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("delete account failed: %w", err)
	}
	return nil
}
