package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
)

// catalogService manages the catalog of public services and their links to
// the institutions that deliver them.
type catalogService struct {
	serviceRepository     repository.Services
	institutionRepository repository.Institutions
}

func newCatalogService(
	serviceRepository repository.Services,
	institutionRepository repository.Institutions,
) *catalogService {
	return &catalogService{
		serviceRepository:     serviceRepository,
		institutionRepository: institutionRepository,
	}
}

func (s *catalogService) Create(ctx context.Context, service *domain.Service) error {
	for _, institutionID := range service.InstitutionIDs {
		if _, err := s.institutionRepository.GetOneByID(ctx, institutionID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrInstitutionNotFound
			}
			return fmt.Errorf("get institution by id failed: %w", err)
		}
	}

	return s.serviceRepository.Create(ctx, service)
}

func (s *catalogService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	service, err := s.serviceRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service by id failed: %w", err)
	}
	return service, nil
}

func (s *catalogService) GetAll(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepository.GetAll(ctx)
}

func (s *catalogService) Update(ctx context.Context, service *domain.Service) error {
	if _, err := s.serviceRepository.GetOneByID(ctx, service.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("get service by id failed: %w", err)
	}

	return s.serviceRepository.Update(ctx, service)
}

// LinkInstitution adds the institution to the service's delivery list; a
// request can then reference the pair.
func (s *catalogService) LinkInstitution(ctx context.Context, serviceID uuid.UUID, institutionID uuid.UUID) error {
	service, err := s.serviceRepository.GetOneByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("get service by id failed: %w", err)
	}

	if _, err := s.institutionRepository.GetOneByID(ctx, institutionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrInstitutionNotFound
		}
		return fmt.Errorf("get institution by id failed: %w", err)
	}

	if service.InstitutionIDs.Contains(institutionID) {
		return nil
	}

	service.InstitutionIDs = append(service.InstitutionIDs, institutionID)

	return s.serviceRepository.Update(ctx, service)
}

func (s *catalogService) UnlinkInstitution(ctx context.Context, serviceID uuid.UUID, institutionID uuid.UUID) error {
	service, err := s.serviceRepository.GetOneByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("get service by id failed: %w", err)
	}

	filtered := service.InstitutionIDs[:0]
	for _, id := range service.InstitutionIDs {
		if id != institutionID {
			filtered = append(filtered, id)
		}
	}
	service.InstitutionIDs = filtered

	return s.serviceRepository.Update(ctx, service)
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.serviceRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("delete service failed: %w", err)
	}
	return nil
}
