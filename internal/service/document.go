package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
)

type documentService struct {
	documentRepository repository.Documents
}

func newDocumentService(documentRepository repository.Documents) *documentService {
	return &documentService{
		documentRepository: documentRepository,
	}
}

type UploadDocumentInput struct {
	UploaderID   uuid.UUID
	OriginalName string
	MimeType     string
	Payload      []byte
}

// Upload stores the file as-is. Documents are immutable once created.
func (s *documentService) Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error) {
	documentID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate document id failed: %w", err)
	}

	document := &domain.Document{
		ID:           documentID,
		UploaderID:   input.UploaderID,
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
		Size:         int64(len(input.Payload)),
		Payload:      input.Payload,
	}

	if err := s.documentRepository.Create(ctx, document); err != nil {
		return nil, fmt.Errorf("create document failed: %w", err)
	}

	return document, nil
}

func (s *documentService) GetMetaByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	document, err := s.documentRepository.GetMetaByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document meta failed: %w", err)
	}
	return document, nil
}

func (s *documentService) Download(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	document, err := s.documentRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document failed: %w", err)
	}
	return document, nil
}

func (s *documentService) GetAllByUploader(ctx context.Context, uploaderID uuid.UUID) ([]domain.Document, error) {
	return s.documentRepository.GetAllByUploader(ctx, uploaderID)
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.documentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("delete document failed: %w", err)
	}
	return nil
}
