package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
)

type rendezvousService struct {
	rendezvousRepository  repository.RendezvousRepo
	institutionRepository repository.Institutions
}

func newRendezvousService(
	rendezvousRepository repository.RendezvousRepo,
	institutionRepository repository.Institutions,
) *rendezvousService {
	return &rendezvousService{
		rendezvousRepository:  rendezvousRepository,
		institutionRepository: institutionRepository,
	}
}

type BookRendezvousInput struct {
	CitizenID     uuid.UUID
	InstitutionID uuid.UUID
	ScheduledAt   time.Time
	Reason        string
}

func (s *rendezvousService) Book(ctx context.Context, input BookRendezvousInput) (*domain.Rendezvous, error) {
	if _, err := s.institutionRepository.GetOneByID(ctx, input.InstitutionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("get institution by id failed: %w", err)
	}

	if input.ScheduledAt.Before(time.Now()) {
		return nil, ErrRendezvousInPast
	}

	rendezvousID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate rendezvous id failed: %w", err)
	}

	rendezvous := &domain.Rendezvous{
		ID:            rendezvousID,
		CitizenID:     input.CitizenID,
		InstitutionID: input.InstitutionID,
		ScheduledAt:   input.ScheduledAt,
		Reason:        input.Reason,
		State:         domain.RendezvousStatePlanifie,
	}

	if err := s.rendezvousRepository.Create(ctx, rendezvous); err != nil {
		return nil, fmt.Errorf("create rendezvous failed: %w", err)
	}

	return rendezvous, nil
}

func (s *rendezvousService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Rendezvous, error) {
	rendezvous, err := s.rendezvousRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRendezvousNotFound
		}
		return nil, fmt.Errorf("get rendezvous by id failed: %w", err)
	}
	return rendezvous, nil
}

func (s *rendezvousService) GetAllByCitizen(ctx context.Context, citizenID uuid.UUID) ([]domain.Rendezvous, error) {
	return s.rendezvousRepository.GetAllByCitizen(ctx, citizenID)
}

func (s *rendezvousService) GetAllByInstitution(ctx context.Context, institutionID uuid.UUID) ([]domain.Rendezvous, error) {
	return s.rendezvousRepository.GetAllByInstitution(ctx, institutionID)
}

func (s *rendezvousService) Update(ctx context.Context, rendezvous *domain.Rendezvous) error {
	if _, err := s.rendezvousRepository.GetOneByID(ctx, rendezvous.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrRendezvousNotFound
		}
		return fmt.Errorf("get rendezvous by id failed: %w", err)
	}

	return s.rendezvousRepository.Update(ctx, rendezvous)
}

func (s *rendezvousService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rendezvousRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrRendezvousNotFound
		}
		return fmt.Errorf("delete rendezvous failed: %w", err)
	}
	return nil
}
