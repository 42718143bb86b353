package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/senservices/backend/internal/domain"
	queueclient "github.com/senservices/backend/internal/queue/client"
	"github.com/senservices/backend/internal/queue/task"
	"github.com/senservices/backend/internal/repository"
	"github.com/senservices/backend/pkg/logger"
)

type requestService struct {
	requestRepository  repository.Requests
	serviceRepository  repository.Services
	documentRepository repository.Documents
	userRepository     repository.Users
}

func newRequestService(
	requestRepository repository.Requests,
	serviceRepository repository.Services,
	documentRepository repository.Documents,
	userRepository repository.Users,
) *requestService {
	return &requestService{
		requestRepository:  requestRepository,
		serviceRepository:  serviceRepository,
		documentRepository: documentRepository,
		userRepository:     userRepository,
	}
}

type CreateRequestInput struct {
	CitizenID     uuid.UUID
	ServiceID     uuid.UUID
	InstitutionID uuid.UUID
	DocumentIDs   []uuid.UUID
}

// Create validates the cross-entity linkage before persisting:
// the service must exist, the institution must be linked to it, and every
// referenced document must exist. The checks and the insert are not one
// transaction; a document deleted in between is not re-checked.
func (s *requestService) Create(ctx context.Context, input CreateRequestInput) (*domain.Request, error) {
	svc, err := s.serviceRepository.GetOneByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service by id failed: %w", err)
	}

	if !svc.InstitutionIDs.Contains(input.InstitutionID) {
		return nil, ErrInstitutionNotLinked
	}

	for _, documentID := range input.DocumentIDs {
		if _, err := s.documentRepository.GetMetaByID(ctx, documentID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, ErrDocumentNotFound
			}
			return nil, fmt.Errorf("get document by id failed: %w", err)
		}
	}

	requestID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate request id failed: %w", err)
	}

	request := &domain.Request{
		ID:            requestID,
		CitizenID:     input.CitizenID,
		ServiceID:     input.ServiceID,
		InstitutionID: input.InstitutionID,
		State:         domain.RequestStateEnCours,
		DocumentIDs:   domain.UUIDList(input.DocumentIDs),
		ProcessedBy:   domain.UUIDList{},
	}

	if err := s.requestRepository.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	s.notify(ctx, request)

	return request, nil
}

func (s *requestService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	request, err := s.requestRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("get request by id failed: %w", err)
	}
	return request, nil
}

func (s *requestService) GetAll(ctx context.Context) ([]domain.Request, error) {
	return s.requestRepository.GetAll(ctx)
}

func (s *requestService) GetAllByCitizen(ctx context.Context, citizenID uuid.UUID) ([]domain.Request, error) {
	return s.requestRepository.GetAllByCitizen(ctx, citizenID)
}

func (s *requestService) GetAllByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.Request, error) {
	return s.requestRepository.GetAllByInstitution(ctx, institutionID)
}

// UpdateState moves the request forward only, appending the acting civil
// servant to the processed-by trail.
func (s *requestService) UpdateState(ctx context.Context, id uuid.UUID, next domain.RequestState, actorID uuid.UUID) (*domain.Request, error) {
	request, err := s.requestRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("get request by id failed: %w", err)
	}

	if !request.State.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	request.State = next
	if !request.ProcessedBy.Contains(actorID) {
		request.ProcessedBy = append(request.ProcessedBy, actorID)
	}

	if err := s.requestRepository.UpdateState(ctx, request); err != nil {
		return nil, fmt.Errorf("update request state failed: %w", err)
	}

	s.notify(ctx, request)

	return request, nil
}

func (s *requestService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.requestRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// notify enqueues the status email for citizens that registered one. Failure
// to enqueue never fails the request operation itself.
func (s *requestService) notify(ctx context.Context, request *domain.Request) {
	client := queueclient.GetClient(ctx)
	if client == nil {
		return
	}

	citizen, err := s.userRepository.GetOneByID(ctx, request.CitizenID)
	if err != nil || !citizen.Email.Valid {
		return
	}

	t, err := task.NewRequestStatusEmailTask(citizen.Email.String, request.ID.String(), string(request.State))
	if err != nil {
		logger.Error("build request status task failed", zap.Error(err))
		return
	}

	if _, err := client.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue request status task failed", zap.Error(err))
	}
}
