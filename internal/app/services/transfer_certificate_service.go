package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/repositories"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
	"github.com/gmps/schooladmin/internal/pkg/helpers"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

type certificateStore interface {
	Create(ctx context.Context, tc *models.TransferCertificate) (int64, error)
	GetByID(ctx context.Context, tcID int64) (*models.TransferCertificate, error)
	GetByIDForStudent(ctx context.Context, tcID, studentID int64) (*models.TransferCertificate, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.TransferCertificate, error)
	GetAll(ctx context.Context) ([]*models.TransferCertificate, error)
	UpdateStatus(ctx context.Context, tcID int64, status string, comments, processedBy *string, processedDate time.Time) error
	Delete(ctx context.Context, tcID int64) error
}

// TransferCertificateService handles the certificate application workflow.
type TransferCertificateService interface {
	Apply(ctx context.Context, studentID int64, req *dto.ApplyCertificateRequest) (*dto.CertificateData, error)
	ListForStudent(ctx context.Context, studentID int64) ([]dto.CertificateData, error)
	ListAll(ctx context.Context) ([]dto.CertificateData, error)
	UpdateStatus(ctx context.Context, tcID int64, req *dto.UpdateCertificateRequest) (*dto.CertificateData, error)
	DeleteByStudent(ctx context.Context, tcID, studentID int64) error
	DeleteByAdmin(ctx context.Context, tcID int64) error
}

type transferCertificateService struct {
	certificates certificateStore
	now          func() time.Time
}

// NewTransferCertificateService creates a new transfer certificate service instance
func NewTransferCertificateService(certificates certificateStore) TransferCertificateService {
	return &transferCertificateService{
		certificates: certificates,
		now:          time.Now,
	}
}

// Apply files a new application. New applications always start pending with
// today's application date.
func (s *transferCertificateService) Apply(ctx context.Context, studentID int64, req *dto.ApplyCertificateRequest) (*dto.CertificateData, error) {
	if strings.TrimSpace(req.DestinationSchool) == "" ||
		strings.TrimSpace(req.Reason) == "" ||
		strings.TrimSpace(req.TransferDate) == "" {
		return nil, apperrors.NewValidationError("Missing required fields")
	}

	transferDate, err := helpers.ParseDate(req.TransferDate)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid transfer date format, expected YYYY-MM-DD")
	}

	tc := &models.TransferCertificate{
		StudentID:         studentID,
		ApplicationDate:   s.now(),
		DestinationSchool: req.DestinationSchool,
		Reason:            req.Reason,
		TransferDate:      transferDate,
		Status:            models.CertificateStatusPending,
	}

	id, err := s.certificates.Create(ctx, tc)
	if err != nil {
		return nil, fmt.Errorf("error creating transfer certificate: %w", err)
	}

	created, err := s.certificates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading transfer certificate: %w", err)
	}

	data := dto.NewCertificateData(created)
	logger.Info().Int64("tcID", id).Int64("studentID", studentID).Msg("Transfer certificate application filed")
	return &data, nil
}

// ListForStudent retrieves a student's applications.
func (s *transferCertificateService) ListForStudent(ctx context.Context, studentID int64) ([]dto.CertificateData, error) {
	certs, err := s.certificates.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving transfer certificates: %w", err)
	}
	return dto.NewCertificateList(certs), nil
}

// ListAll retrieves every application for the admin dashboard.
func (s *transferCertificateService) ListAll(ctx context.Context) ([]dto.CertificateData, error) {
	certs, err := s.certificates.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving transfer certificates: %w", err)
	}
	return dto.NewCertificateList(certs), nil
}

// UpdateStatus processes an application. Only the two terminal statuses are
// accepted.
func (s *transferCertificateService) UpdateStatus(ctx context.Context, tcID int64, req *dto.UpdateCertificateRequest) (*dto.CertificateData, error) {
	if req.Status != models.CertificateStatusApproved && req.Status != models.CertificateStatusRejected {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, "Status must be approved or rejected")
	}

	err := s.certificates.UpdateStatus(ctx, tcID, req.Status, req.Comments, req.ProcessedBy, s.now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("error updating transfer certificate: %w", err)
	}

	updated, err := s.certificates.GetByID(ctx, tcID)
	if err != nil {
		return nil, fmt.Errorf("error reloading transfer certificate: %w", err)
	}

	data := dto.NewCertificateData(updated)
	logger.Info().Int64("tcID", tcID).Str("status", req.Status).Msg("Transfer certificate processed")
	return &data, nil
}

// DeleteByStudent withdraws a student's own application. Only pending
// applications can be withdrawn.
func (s *transferCertificateService) DeleteByStudent(ctx context.Context, tcID, studentID int64) error {
	tc, err := s.certificates.GetByIDForStudent(ctx, tcID, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCertificateNotFound
		}
		return fmt.Errorf("error retrieving transfer certificate: %w", err)
	}

	if tc.Status != models.CertificateStatusPending {
		return apperrors.NewCustomError(apperrors.ErrCertificateNotPending, "Only pending applications can be deleted")
	}

	if err := s.certificates.Delete(ctx, tcID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCertificateNotFound
		}
		return fmt.Errorf("error deleting transfer certificate: %w", err)
	}

	logger.Info().Int64("tcID", tcID).Int64("studentID", studentID).Msg("Transfer certificate withdrawn")
	return nil
}

// DeleteByAdmin removes any application regardless of status.
func (s *transferCertificateService) DeleteByAdmin(ctx context.Context, tcID int64) error {
	if err := s.certificates.Delete(ctx, tcID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCertificateNotFound
		}
		return fmt.Errorf("error deleting transfer certificate: %w", err)
	}

	logger.Info().Int64("tcID", tcID).Msg("Transfer certificate deleted")
	return nil
}
