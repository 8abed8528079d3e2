package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/repositories"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
)

type fakeStudentCreds struct {
	student *models.Student
	err     error
}

func (f *fakeStudentCreds) FindByCredentials(ctx context.Context, username, password string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.student, nil
}

type fakeAdminCreds struct {
	admin *models.Admin
	err   error
}

func (f *fakeAdminCreds) FindByCredentials(ctx context.Context, username, password string) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.admin, nil
}

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) GenerateToken(userID int64, username, userType string) (string, error) {
	return f.token, f.err
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewAuthService(&fakeStudentCreds{}, &fakeAdminCreds{}, &fakeTokens{token: "tok"})

	tests := []dto.LoginRequest{
		{Username: "", Password: "pw", UserType: "student"},
		{Username: "ravi", Password: "", UserType: "student"},
		{Username: "ravi", Password: "pw", UserType: ""},
		{Username: "   ", Password: "pw", UserType: "student"},
	}

	for _, req := range tests {
		_, err := svc.Login(context.Background(), &req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("Login(%+v) error = %v, want validation failure", req, err)
		}
	}
}

func TestLoginInvalidUserType(t *testing.T) {
	svc := NewAuthService(&fakeStudentCreds{}, &fakeAdminCreds{}, &fakeTokens{token: "tok"})

	req := dto.LoginRequest{Username: "ravi", Password: "pw", UserType: "teacher"}
	_, err := svc.Login(context.Background(), &req)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("Login error = %v, want bad request", err)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	svc := NewAuthService(
		&fakeStudentCreds{err: repositories.ErrNotFound},
		&fakeAdminCreds{err: repositories.ErrNotFound},
		&fakeTokens{token: "tok"},
	)

	for _, userType := range []string{"student", "admin"} {
		req := dto.LoginRequest{Username: "ravi", Password: "wrong", UserType: userType}
		_, err := svc.Login(context.Background(), &req)
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("Login as %s error = %v, want invalid credentials", userType, err)
		}
	}
}

func TestLoginStudentSuccess(t *testing.T) {
	student := &models.Student{StudentID: 7, Name: "Ravi Kumar", Username: "ravi", Password: "secret-pw"}
	svc := NewAuthService(&fakeStudentCreds{student: student}, &fakeAdminCreds{}, &fakeTokens{token: "signed-token"})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ravi", Password: "secret-pw", UserType: "student"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.Message != "Login successful" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.Token != "signed-token" {
		t.Errorf("Token = %q", resp.Token)
	}
	if resp.User.ID != 7 || resp.User.UserType != "student" || resp.User.Username != "ravi" {
		t.Errorf("User = %+v", resp.User)
	}

	// The serialized response must never leak the password.
	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	if strings.Contains(string(body), "secret-pw") {
		t.Errorf("response leaks password: %s", body)
	}
}

func TestLoginAdminSuccess(t *testing.T) {
	admin := &models.Admin{AdminID: 3, Name: "Head Admin", Username: "admin"}
	svc := NewAuthService(&fakeStudentCreds{}, &fakeAdminCreds{admin: admin}, &fakeTokens{token: "tok"})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "pw", UserType: "admin"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.ID != 3 || resp.User.UserType != "admin" {
		t.Errorf("User = %+v", resp.User)
	}
}
