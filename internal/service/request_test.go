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

func TestRequestService_Create(t *testing.T) {
	requestRepo := new(mocks.Requests)
	serviceRepo := new(mocks.Services)
	documentRepo := new(mocks.Documents)

	citizenID := uuid.New()
	serviceID := uuid.New()
	institutionID := uuid.New()
	documentID := uuid.New()

	serviceRepo.On("GetOneByID", mock.Anything, serviceID).Return(&domain.Service{
		ID:             serviceID,
		InstitutionIDs: domain.UUIDList{institutionID},
	}, nil)
	documentRepo.On("GetMetaByID", mock.Anything, documentID).
		Return(&domain.Document{ID: documentID}, nil)
	requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Request")).Return(nil)

	s := newRequestService(requestRepo, serviceRepo, documentRepo, new(mocks.Users))

	request, err := s.Create(context.Background(), CreateRequestInput{
		CitizenID:     citizenID,
		ServiceID:     serviceID,
		InstitutionID: institutionID,
		DocumentIDs:   []uuid.UUID{documentID},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RequestStateEnCours, request.State)
	assert.Equal(t, citizenID, request.CitizenID)
	assert.Len(t, request.DocumentIDs, 1)
	assert.Empty(t, request.ProcessedBy)
}

func TestRequestService_Create_InstitutionNotLinked(t *testing.T) {
	serviceRepo := new(mocks.Services)
	serviceID := uuid.New()

	serviceRepo.On("GetOneByID", mock.Anything, serviceID).Return(&domain.Service{
		ID:             serviceID,
		InstitutionIDs: domain.UUIDList{uuid.New()},
	}, nil)

	s := newRequestService(new(mocks.Requests), serviceRepo, new(mocks.Documents), new(mocks.Users))

	_, err := s.Create(context.Background(), CreateRequestInput{
		CitizenID:     uuid.New(),
		ServiceID:     serviceID,
		InstitutionID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrInstitutionNotLinked)
}

func TestRequestService_Create_DocumentMissing(t *testing.T) {
	serviceRepo := new(mocks.Services)
	documentRepo := new(mocks.Documents)

	serviceID := uuid.New()
	institutionID := uuid.New()
	documentID := uuid.New()

	serviceRepo.On("GetOneByID", mock.Anything, serviceID).Return(&domain.Service{
		ID:             serviceID,
		InstitutionIDs: domain.UUIDList{institutionID},
	}, nil)
	documentRepo.On("GetMetaByID", mock.Anything, documentID).Return(nil, domain.ErrNotFound)

	s := newRequestService(new(mocks.Requests), serviceRepo, documentRepo, new(mocks.Users))

	_, err := s.Create(context.Background(), CreateRequestInput{
		CitizenID:     uuid.New(),
		ServiceID:     serviceID,
		InstitutionID: institutionID,
		DocumentIDs:   []uuid.UUID{documentID},
	})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestRequestService_Create_ServiceMissing(t *testing.T) {
	serviceRepo := new(mocks.Services)
	serviceID := uuid.New()
	serviceRepo.On("GetOneByID", mock.Anything, serviceID).Return(nil, domain.ErrNotFound)

	s := newRequestService(new(mocks.Requests), serviceRepo, new(mocks.Documents), new(mocks.Users))

	_, err := s.Create(context.Background(), CreateRequestInput{ServiceID: serviceID})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRequestService_UpdateState(t *testing.T) {
	requestRepo := new(mocks.Requests)
	requestID := uuid.New()
	actorID := uuid.New()

	requestRepo.On("GetOneByID", mock.Anything, requestID).Return(&domain.Request{
		ID:          requestID,
		State:       domain.RequestStateEnCours,
		ProcessedBy: domain.UUIDList{},
	}, nil)
	requestRepo.On("UpdateState", mock.Anything, mock.AnythingOfType("*domain.Request")).Return(nil)

	s := newRequestService(requestRepo, new(mocks.Services), new(mocks.Documents), new(mocks.Users))

	updated, err := s.UpdateState(context.Background(), requestID, domain.RequestStateConfirme, actorID)
	require.NoError(t, err)

	assert.Equal(t, domain.RequestStateConfirme, updated.State)
	assert.True(t, updated.ProcessedBy.Contains(actorID))
}

func TestRequestService_UpdateState_InvalidTransition(t *testing.T) {
	requestRepo := new(mocks.Requests)
	requestID := uuid.New()

	requestRepo.On("GetOneByID", mock.Anything, requestID).Return(&domain.Request{
		ID:    requestID,
		State: domain.RequestStateTermine,
	}, nil)

	s := newRequestService(requestRepo, new(mocks.Services), new(mocks.Documents), new(mocks.Users))

	_, err := s.UpdateState(context.Background(), requestID, domain.RequestStateRejete, uuid.New())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	requestRepo.AssertNotCalled(t, "UpdateState", mock.Anything, mock.Anything)
}
