package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared sentinel for lookups that match no row.
var ErrNotFound = errors.New("not found")

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository             *StudentRepository
	AdminRepository               *AdminRepository
	SchoolRepository              *SchoolRepository
	AcademicRecordRepository      *AcademicRecordRepository
	DocumentRepository            *DocumentRepository
	TransferCertificateRepository *TransferCertificateRepository
	SchemeRepository              *SchemeRepository
	DiagnosticRepository          *DiagnosticRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:             NewStudentRepository(db),
		AdminRepository:               NewAdminRepository(db),
		SchoolRepository:              NewSchoolRepository(db),
		AcademicRecordRepository:      NewAcademicRecordRepository(db),
		DocumentRepository:            NewDocumentRepository(db),
		TransferCertificateRepository: NewTransferCertificateRepository(db),
		SchemeRepository:              NewSchemeRepository(db),
		DiagnosticRepository:          NewDiagnosticRepository(db),
	}
}
