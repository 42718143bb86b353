package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
)

type institutionService struct {
	institutionRepository repository.Institutions
}

func newInstitutionService(institutionRepository repository.Institutions) *institutionService {
	return &institutionService{
		institutionRepository: institutionRepository,
	}
}

// Create treats the name as the practical identity of an institution.
func (s *institutionService) Create(ctx context.Context, institution *domain.Institution) error {
	if _, err := s.institutionRepository.GetByName(ctx, institution.Name); err == nil {
		return domain.ErrDuplicateEntry
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get institution by name failed: %w", err)
	}

	return s.institutionRepository.Create(ctx, institution)
}

func (s *institutionService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Institution, error) {
	institution, err := s.institutionRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("get institution by id failed: %w", err)
	}
	return institution, nil
}

func (s *institutionService) GetByName(ctx context.Context, name string) (*domain.Institution, error) {
	institution, err := s.institutionRepository.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("get institution by name failed: %w", err)
	}
	return institution, nil
}

func (s *institutionService) GetAll(ctx context.Context) ([]domain.Institution, error) {
	return s.institutionRepository.GetAll(ctx)
}

func (s *institutionService) Update(ctx context.Context, institution *domain.Institution) error {
	if _, err := s.institutionRepository.GetOneByID(ctx, institution.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrInstitutionNotFound
		}
		return fmt.Errorf("get institution by id failed: %w", err)
	}

	return s.institutionRepository.Update(ctx, institution)
}

func (s *institutionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.institutionRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrInstitutionNotFound
		}
		return fmt.Errorf("delete institution failed: %w", err)
	}
	return nil
}
