package services

import (
	"github.com/gmps/schooladmin/internal/app/repositories"
	"github.com/gmps/schooladmin/internal/pkg/auth"
	"github.com/gmps/schooladmin/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService                AuthService
	StudentService             StudentService
	DocumentService            DocumentService
	TransferCertificateService TransferCertificateService
	DiagnosticService          DiagnosticService
}

// NewServices initializes all services on top of the repositories, the token
// service and the file storage.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage *filestorage.LocalStorage) *Services {
	return &Services{
		AuthService: NewAuthService(repos.StudentRepository, repos.AdminRepository, jwtService),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.AcademicRecordRepository,
			repos.SchemeRepository,
			repos.SchoolRepository,
		),
		DocumentService:            NewDocumentService(repos.DocumentRepository, storage),
		TransferCertificateService: NewTransferCertificateService(repos.TransferCertificateRepository),
		DiagnosticService:          NewDiagnosticService(repos.DiagnosticRepository),
	}
}
