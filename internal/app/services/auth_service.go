package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/repositories"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// User types accepted by the login endpoint.
const (
	UserTypeStudent = "student"
	UserTypeAdmin   = "admin"
)

type studentCredentialStore interface {
	FindByCredentials(ctx context.Context, username, password string) (*models.Student, error)
}

type adminCredentialStore interface {
	FindByCredentials(ctx context.Context, username, password string) (*models.Admin, error)
}

type tokenGenerator interface {
	GenerateToken(userID int64, username, userType string) (string, error)
}

// AuthService handles login for both user types.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	studentStore studentCredentialStore
	adminStore   adminCredentialStore
	tokens       tokenGenerator
}

// NewAuthService creates a new auth service instance
func NewAuthService(studentStore studentCredentialStore, adminStore adminCredentialStore, tokens tokenGenerator) AuthService {
	return &authService{
		studentStore: studentStore,
		adminStore:   adminStore,
		tokens:       tokens,
	}
}

// Login authenticates a student or an admin and issues a signed token.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" || strings.TrimSpace(req.UserType) == "" {
		return nil, apperrors.NewValidationError("Missing required fields")
	}

	var user dto.UserSummary
	switch req.UserType {
	case UserTypeStudent:
		student, err := s.studentStore.FindByCredentials(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("error authenticating student: %w", err)
		}
		user = dto.UserSummary{
			ID:       student.StudentID,
			Name:     student.Name,
			Username: student.Username,
			UserType: UserTypeStudent,
		}
	case UserTypeAdmin:
		admin, err := s.adminStore.FindByCredentials(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("error authenticating admin: %w", err)
		}
		user = dto.UserSummary{
			ID:       admin.AdminID,
			Name:     admin.Name,
			Username: admin.Username,
			UserType: UserTypeAdmin,
		}
	default:
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "Invalid user type")
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.UserType)
	if err != nil {
		logger.Error().Err(err).Str("username", user.Username).Msg("Error generating login token")
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Str("username", user.Username).Str("userType", user.UserType).Msg("User logged in")

	return &dto.LoginResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	}, nil
}
