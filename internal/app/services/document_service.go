package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/repositories"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

type documentStore interface {
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Document, error)
	GetByIDForStudent(ctx context.Context, documentID, studentID int64) (*models.Document, error)
	Create(ctx context.Context, doc *models.Document) (int64, error)
	Delete(ctx context.Context, documentID, studentID int64) error
}

type fileStore interface {
	AllowedFile(filename string) bool
	SaveUpload(fileHeader *multipart.FileHeader) (string, error)
	StoredPath(storedName string) string
	FileURL(storedName string) string
	DeleteFile(storedName string) error
}

// DocumentService handles document metadata and the backing blob files.
type DocumentService interface {
	List(ctx context.Context, studentID int64) ([]dto.DocumentData, error)
	Upload(ctx context.Context, studentID int64, documentType string, fileHeader *multipart.FileHeader) (*dto.DocumentData, error)
	Delete(ctx context.Context, documentID, studentID int64) error
}

type documentService struct {
	documents documentStore
	files     fileStore
	now       func() time.Time
}

// NewDocumentService creates a new document service instance
func NewDocumentService(documents documentStore, files fileStore) DocumentService {
	return &documentService{
		documents: documents,
		files:     files,
		now:       time.Now,
	}
}

// List retrieves a student's documents with their download URLs.
func (s *documentService) List(ctx context.Context, studentID int64) ([]dto.DocumentData, error) {
	documents, err := s.documents.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving documents: %w", err)
	}

	out := make([]dto.DocumentData, 0, len(documents))
	for _, doc := range documents {
		out = append(out, dto.NewDocumentData(doc, s.files.FileURL(doc.FileName)))
	}
	return out, nil
}

// Upload validates, stores and registers a new document. The file is written
// before the metadata row; if the insert then fails the stored file is left
// behind and only logged, matching delete's best-effort handling.
func (s *documentService) Upload(ctx context.Context, studentID int64, documentType string, fileHeader *multipart.FileHeader) (*dto.DocumentData, error) {
	if fileHeader == nil {
		return nil, apperrors.NewValidationError("No file provided")
	}
	if strings.TrimSpace(fileHeader.Filename) == "" {
		return nil, apperrors.NewValidationError("No file selected")
	}
	if !s.files.AllowedFile(fileHeader.Filename) {
		return nil, apperrors.NewCustomError(apperrors.ErrFileTypeNotAllowed, "File type not allowed")
	}

	storedName, err := s.files.SaveUpload(fileHeader)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Error storing uploaded file")
		return nil, apperrors.NewCustomError(apperrors.ErrFileStorageFailed, "Failed to store file")
	}

	relativePath := s.files.StoredPath(storedName)
	doc := &models.Document{
		StudentID:    studentID,
		FileName:     storedName,
		FilePath:     relativePath,
		RelativePath: &relativePath,
		UploadDate:   s.now(),
	}
	if documentType != "" {
		doc.DocumentType = &documentType
	}

	id, err := s.documents.Create(ctx, doc)
	if err != nil {
		logger.Warn().Err(err).Str("storedName", storedName).Msg("Document row insert failed, stored file orphaned")
		return nil, fmt.Errorf("error creating document: %w", err)
	}
	doc.DocumentID = id

	data := dto.NewDocumentData(doc, s.files.FileURL(storedName))
	logger.Info().Int64("documentID", id).Int64("studentID", studentID).Msg("Document uploaded")
	return &data, nil
}

// Delete removes the metadata row first, then unlinks the blob best-effort.
func (s *documentService) Delete(ctx context.Context, documentID, studentID int64) error {
	doc, err := s.documents.GetByIDForStudent(ctx, documentID, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("error retrieving document: %w", err)
	}

	if err := s.documents.Delete(ctx, documentID, studentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("error deleting document: %w", err)
	}

	if err := s.files.DeleteFile(doc.FileName); err != nil {
		logger.Warn().Err(err).Str("fileName", doc.FileName).Msg("Failed to unlink document file")
	}

	logger.Info().Int64("documentID", documentID).Int64("studentID", studentID).Msg("Document deleted")
	return nil
}
