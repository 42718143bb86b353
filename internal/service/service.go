package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
	"github.com/senservices/backend/internal/sms"
	"github.com/senservices/backend/pkg/auth"
	"github.com/senservices/backend/pkg/hash"
	"github.com/senservices/backend/pkg/otp"
)

type Services struct {
	Users        Users
	Accounts     Accounts
	CitizenAuth  CitizenAuth
	AgentAuth    AgentAuth
	Institutions Institutions
	Catalog      Catalog
	Requests     Requests
	Documents    Documents
	Rendezvous   Rendezvous
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	SmsSender    sms.Sender
	Redis        redis.UniversalClient
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	users := newUserService(deps.Repos.Users, deps.Hasher)
	accounts := newAccountService(
		deps.Repos.Accounts,
		deps.Repos.Users,
		deps.Hasher,
		deps.OtpGenerator,
		deps.SmsSender,
		deps.Redis,
		deps.Config.Auth,
	)

	return &Services{
		Users:    users,
		Accounts: accounts,
		CitizenAuth: newCitizenAuthService(
			users,
			accounts,
			deps.Repos.Users,
			deps.Repos.PasswordResets,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			deps.SmsSender,
			deps.Config.Auth,
		),
		AgentAuth: newAgentAuthService(
			deps.Repos.Users,
			deps.Repos.Institutions,
			deps.Hasher,
			deps.TokenManager,
		),
		Institutions: newInstitutionService(deps.Repos.Institutions),
		Catalog:      newCatalogService(deps.Repos.Services, deps.Repos.Institutions),
		Requests: newRequestService(
			deps.Repos.Requests,
			deps.Repos.Services,
			deps.Repos.Documents,
			deps.Repos.Users,
		),
		Documents:  newDocumentService(deps.Repos.Documents),
		Rendezvous: newRendezvousService(deps.Repos.Rendezvous, deps.Repos.Institutions),
	}
}

type Users interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetAllByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Accounts interface {
	Create(ctx context.Context, cni string, password string, userID uuid.UUID) (*domain.Account, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Account, error)
	GenerateAndSendOtp(ctx context.Context, cni string) error
	VerifyOtp(ctx context.Context, cni string, code string) error
	Login(ctx context.Context, cni string, password string) (*domain.Account, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword string, newPassword string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CitizenAuth interface {
	SignUp(ctx context.Context, input CitizenSignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, cni string, password string) (*AuthResult, error)
	RequestPasswordReset(ctx context.Context, cni string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

type AgentAuth interface {
	SignUp(ctx context.Context, input AgentSignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, email string, password string) (*AuthResult, error)
}

type Institutions interface {
	Create(ctx context.Context, institution *domain.Institution) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Institution, error)
	GetByName(ctx context.Context, name string) (*domain.Institution, error)
	GetAll(ctx context.Context) ([]domain.Institution, error)
	Update(ctx context.Context, institution *domain.Institution) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Catalog interface {
	Create(ctx context.Context, service *domain.Service) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	GetAll(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	LinkInstitution(ctx context.Context, serviceID uuid.UUID, institutionID uuid.UUID) error
	UnlinkInstitution(ctx context.Context, serviceID uuid.UUID, institutionID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Requests interface {
	Create(ctx context.Context, input CreateRequestInput) (*domain.Request, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	GetAll(ctx context.Context) ([]domain.Request, error)
	GetAllByCitizen(ctx context.Context, citizenID uuid.UUID) ([]domain.Request, error)
	GetAllByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.Request, error)
	UpdateState(ctx context.Context, id uuid.UUID, next domain.RequestState, actorID uuid.UUID) (*domain.Request, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Documents interface {
	Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error)
	GetMetaByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Download(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetAllByUploader(ctx context.Context, uploaderID uuid.UUID) ([]domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Rendezvous interface {
	Book(ctx context.Context, input BookRendezvousInput) (*domain.Rendezvous, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Rendezvous, error)
	GetAllByCitizen(ctx context.Context, citizenID uuid.UUID) ([]domain.Rendezvous, error)
	GetAllByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.Rendezvous, error)
	Update(ctx context.Context, rendezvous *domain.Rendezvous) error
	Delete(ctx context.Context, id uuid.UUID) error
}
