package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository/mocks"
)

func TestRendezvousService_Book(t *testing.T) {
	institutionID := uuid.New()
	citizenID := uuid.New()

	institutionRepo := new(mocks.Institutions)
	institutionRepo.On("GetOneByID", mock.Anything, institutionID).
		Return(&domain.Institution{ID: institutionID}, nil)

	rendezvousRepo := new(mocks.Rendezvous)
	rendezvousRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rendezvous")).Return(nil)

	s := newRendezvousService(rendezvousRepo, institutionRepo)

	booked, err := s.Book(context.Background(), BookRendezvousInput{
		CitizenID:     citizenID,
		InstitutionID: institutionID,
		ScheduledAt:   time.Now().Add(24 * time.Hour),
		Reason:        "Renouvellement de passeport",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RendezvousStatePlanifie, booked.State)
	assert.Equal(t, citizenID, booked.CitizenID)
}

func TestRendezvousService_Book_InPast(t *testing.T) {
	institutionID := uuid.New()

	institutionRepo := new(mocks.Institutions)
	institutionRepo.On("GetOneByID", mock.Anything, institutionID).
		Return(&domain.Institution{ID: institutionID}, nil)

	rendezvousRepo := new(mocks.Rendezvous)

	s := newRendezvousService(rendezvousRepo, institutionRepo)

	_, err := s.Book(context.Background(), BookRendezvousInput{
		CitizenID:     uuid.New(),
		InstitutionID: institutionID,
		ScheduledAt:   time.Now().Add(-time.Hour),
		Reason:        "Renouvellement de passeport",
	})
	assert.ErrorIs(t, err, ErrRendezvousInPast)
	rendezvousRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRendezvousService_Book_InstitutionMissing(t *testing.T) {
	institutionID := uuid.New()

	institutionRepo := new(mocks.Institutions)
	institutionRepo.On("GetOneByID", mock.Anything, institutionID).Return(nil, domain.ErrNotFound)

	s := newRendezvousService(new(mocks.Rendezvous), institutionRepo)

	_, err := s.Book(context.Background(), BookRendezvousInput{
		CitizenID:     uuid.New(),
		InstitutionID: institutionID,
		ScheduledAt:   time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrInstitutionNotFound)
}
