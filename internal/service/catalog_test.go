package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository/mocks"
)

func TestCatalogService_Create_InstitutionMissing(t *testing.T) {
	institutionID := uuid.New()

	institutionRepo := new(mocks.Institutions)
	institutionRepo.On("GetOneByID", mock.Anything, institutionID).Return(nil, domain.ErrNotFound)

	s := newCatalogService(new(mocks.Services), institutionRepo)

	err := s.Create(context.Background(), &domain.Service{
		ID:             uuid.New(),
		Name:           "Extrait de naissance",
		InstitutionIDs: domain.UUIDList{institutionID},
	})
	assert.ErrorIs(t, err, ErrInstitutionNotFound)
}

func TestCatalogService_LinkInstitution(t *testing.T) {
	serviceID := uuid.New()
	institutionID := uuid.New()

	serviceRepo := new(mocks.Services)
	serviceRepo.On("GetOneByID", mock.Anything, serviceID).Return(&domain.Service{
		ID:             serviceID,
		InstitutionIDs: domain.UUIDList{},
	}, nil)
	serviceRepo.On("Update", mock.Anything, mock.MatchedBy(func(svc *domain.Service) bool {
		return svc.InstitutionIDs.Contains(institutionID)
	})).Return(nil)

	institutionRepo := new(mocks.Institutions)
	institutionRepo.On("GetOneByID", mock.Anything, institutionID).
		Return(&domain.Institution{ID: institutionID}, nil)

	s := newCatalogService(serviceRepo, institutionRepo)

	require.NoError(t, s.LinkInstitution(context.Background(), serviceID, institutionID))
	serviceRepo.AssertExpectations(t)
}

func TestCatalogService_LinkInstitution_AlreadyLinked(t *testing.T) {
	serviceID := uuid.New()
	institutionID := uuid.New()

	serviceRepo := new(mocks.Services)
	serviceRepo.On("GetOneByID", mock.Anything, serviceID).Return(&domain.Service{
		ID:             serviceID,
		InstitutionIDs: domain.UUIDList{institutionID},
	}, nil)

	institutionRepo := new(mocks.Institutions)
	institutionRepo.On("GetOneByID", mock.Anything, institutionID).
		Return(&domain.Institution{ID: institutionID}, nil)

	s := newCatalogService(serviceRepo, institutionRepo)

	require.NoError(t, s.LinkInstitution(context.Background(), serviceID, institutionID))
	serviceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_UnlinkInstitution(t *testing.T) {
	serviceID := uuid.New()
	institutionID := uuid.New()
	otherID := uuid.New()

	serviceRepo := new(mocks.Services)
	serviceRepo.On("GetOneByID", mock.Anything, serviceID).Return(&domain.Service{
		ID:             serviceID,
		InstitutionIDs: domain.UUIDList{institutionID, otherID},
	}, nil)
	serviceRepo.On("Update", mock.Anything, mock.MatchedBy(func(svc *domain.Service) bool {
		return !svc.InstitutionIDs.Contains(institutionID) && svc.InstitutionIDs.Contains(otherID)
	})).Return(nil)

	s := newCatalogService(serviceRepo, new(mocks.Institutions))

	require.NoError(t, s.UnlinkInstitution(context.Background(), serviceID, institutionID))
	serviceRepo.AssertExpectations(t)
}
