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

type studentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, id int64, name string, dob *time.Time, contactInfo *string) error
}

type academicRecordStore interface {
	GetByStudent(ctx context.Context, studentID int64) ([]*models.AcademicRecord, error)
}

type schemeStore interface {
	GetByStudent(ctx context.Context, studentID int64) ([]*models.SchemeHistory, error)
}

type schoolStore interface {
	GetAll(ctx context.Context) ([]models.School, error)
}

// StudentService handles student profile, academic record and scheme reads
// plus the admin-side student operations.
type StudentService interface {
	GetProfile(ctx context.Context, studentID int64) (*dto.StudentProfile, error)
	GetAcademicRecords(ctx context.Context, studentID int64) ([]dto.AcademicRecordData, error)
	GetAcademicRecordsStrict(ctx context.Context, studentID int64) ([]dto.AcademicRecordData, error)
	GetSchemes(ctx context.Context, studentID int64) ([]dto.SchemeData, error)
	ListStudents(ctx context.Context) ([]dto.StudentProfile, error)
	ListSchools(ctx context.Context) ([]models.School, error)
	UpdateStudent(ctx context.Context, studentID int64, req *dto.UpdateStudentRequest) (*dto.StudentProfile, error)
	GetComprehensiveDetails(ctx context.Context, studentID int64) (*dto.ComprehensiveStudentResponse, error)
}

type studentService struct {
	students studentStore
	records  academicRecordStore
	schemes  schemeStore
	schools  schoolStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students studentStore, records academicRecordStore, schemes schemeStore, schools schoolStore) StudentService {
	return &studentService{
		students: students,
		records:  records,
		schemes:  schemes,
		schools:  schools,
	}
}

// GetProfile retrieves a single student profile.
func (s *studentService) GetProfile(ctx context.Context, studentID int64) (*dto.StudentProfile, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	profile := dto.NewStudentProfile(student)
	return &profile, nil
}

// GetAcademicRecords retrieves a student's academic records. An empty result
// is not an error.
func (s *studentService) GetAcademicRecords(ctx context.Context, studentID int64) ([]dto.AcademicRecordData, error) {
	records, err := s.records.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic records: %w", err)
	}
	return dto.NewAcademicRecordList(records), nil
}

// GetAcademicRecordsStrict behaves like GetAcademicRecords but treats an
// empty result as not found. Used by the admin lookup endpoint.
func (s *studentService) GetAcademicRecordsStrict(ctx context.Context, studentID int64) ([]dto.AcademicRecordData, error) {
	records, err := s.GetAcademicRecords(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No academic records found for this student")
	}
	return records, nil
}

// GetSchemes retrieves a student's scheme enrollment history.
func (s *studentService) GetSchemes(ctx context.Context, studentID int64) ([]dto.SchemeData, error) {
	history, err := s.schemes.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving scheme history: %w", err)
	}
	return dto.NewSchemeList(history), nil
}

// ListStudents retrieves all students for the admin dashboard.
func (s *studentService) ListStudents(ctx context.Context) ([]dto.StudentProfile, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return dto.NewStudentProfiles(students), nil
}

// ListSchools retrieves all schools.
func (s *studentService) ListSchools(ctx context.Context) ([]models.School, error) {
	schools, err := s.schools.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools: %w", err)
	}
	return schools, nil
}

// UpdateStudent updates the writable profile fields and returns the fresh
// profile.
func (s *studentService) UpdateStudent(ctx context.Context, studentID int64, req *dto.UpdateStudentRequest) (*dto.StudentProfile, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Name is required")
	}

	var dob *time.Time
	if req.DOB != nil && *req.DOB != "" {
		parsed, err := helpers.ParseDate(*req.DOB)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid date of birth format, expected YYYY-MM-DD")
		}
		dob = &parsed
	}

	if err := s.students.Update(ctx, studentID, req.Name, dob, req.ContactInfo); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return s.GetProfile(ctx, studentID)
}

// GetComprehensiveDetails assembles the full admin view of a student. A
// missing student fails the whole request; failures in the secondary
// sections degrade to empty lists.
func (s *studentService) GetComprehensiveDetails(ctx context.Context, studentID int64) (*dto.ComprehensiveStudentResponse, error) {
	profile, err := s.GetProfile(ctx, studentID)
	if err != nil {
		return nil, err
	}

	records, err := s.GetAcademicRecords(ctx, studentID)
	if err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Msg("Academic records unavailable for comprehensive view")
		records = []dto.AcademicRecordData{}
	}

	schemes, err := s.GetSchemes(ctx, studentID)
	if err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Msg("Scheme history unavailable for comprehensive view")
		schemes = []dto.SchemeData{}
	}

	return &dto.ComprehensiveStudentResponse{
		Student:         *profile,
		AcademicRecords: records,
		Schemes:         schemes,
	}, nil
}
