package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
)

type fakeAuthService struct {
	resp *dto.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newAuthRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/auth/login", NewAuthController(svc).Login)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginInvalidBody(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{})

	w := postJSON(router, "/api/auth/login", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{err: apperrors.ErrInvalidCredentials})

	w := postJSON(router, "/api/auth/login", `{"username":"ravi","password":"wrong","userType":"student"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["message"] != "Invalid credentials" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestLoginSuccess(t *testing.T) {
	router := newAuthRouter(&fakeAuthService{resp: &dto.LoginResponse{
		Message: "Login successful",
		User:    dto.UserSummary{ID: 7, Name: "Ravi", Username: "ravi", UserType: "student"},
		Token:   "signed-token",
	}})

	w := postJSON(router, "/api/auth/login", `{"username":"ravi","password":"pw","userType":"student"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Token != "signed-token" || body.User.ID != 7 {
		t.Errorf("body = %+v", body)
	}
}
