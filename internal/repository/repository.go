package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/senservices/backend/internal/domain"
)

type Repositories struct {
	Users          Users
	Accounts       Accounts
	Institutions   Institutions
	Services       Services
	Requests       Requests
	Documents      Documents
	Rendezvous     RendezvousRepo
	Sms            Sms
	PasswordResets PasswordResets
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:          newUserRepository(db),
		Accounts:       newAccountRepository(db),
		Institutions:   newInstitutionRepository(db),
		Services:       newServiceRepository(db),
		Requests:       newRequestRepository(db),
		Documents:      newDocumentRepository(db),
		Rendezvous:     newRendezvousRepository(db),
		Sms:            newSmsRepository(db),
		PasswordResets: newPasswordResetRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	GetByCNI(ctx context.Context, cni string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAllByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Accounts interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	GetByCNI(ctx context.Context, cni string) (*domain.Account, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	SetOtpHash(ctx context.Context, id uuid.UUID, otpHash string) error
	SetConfirmed(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Institutions interface {
	Create(ctx context.Context, institution *domain.Institution) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Institution, error)
	GetByName(ctx context.Context, name string) (*domain.Institution, error)
	GetAll(ctx context.Context) ([]domain.Institution, error)
	Update(ctx context.Context, institution *domain.Institution) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Services interface {
	Create(ctx context.Context, service *domain.Service) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	GetAll(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Requests interface {
	Create(ctx context.Context, request *domain.Request) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	GetAll(ctx context.Context) ([]domain.Request, error)
	GetAllByCitizen(ctx context.Context, citizenID uuid.UUID) ([]domain.Request, error)
	GetAllByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.Request, error)
	UpdateState(ctx context.Context, request *domain.Request) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Documents interface {
	Create(ctx context.Context, document *domain.Document) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetMetaByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetAllByUploader(ctx context.Context, uploaderID uuid.UUID) ([]domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RendezvousRepo interface {
	Create(ctx context.Context, rendezvous *domain.Rendezvous) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Rendezvous, error)
	GetAllByCitizen(ctx context.Context, citizenID uuid.UUID) ([]domain.Rendezvous, error)
	GetAllByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.Rendezvous, error)
	Update(ctx context.Context, rendezvous *domain.Rendezvous) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Sms interface {
	Create(ctx context.Context, message *domain.SmsMessage) error
	GetAll(ctx context.Context) ([]domain.SmsMessage, error)
}

type PasswordResets interface {
	Create(ctx context.Context, reset *domain.PasswordReset) error
	GetByToken(ctx context.Context, token string) (*domain.PasswordReset, error)
	Consume(ctx context.Context, id uuid.UUID) error
}
