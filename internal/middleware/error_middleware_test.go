package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/pkg/apperrors"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/t", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"document not found", apperrors.ErrDocumentNotFound, http.StatusNotFound},
		{"certificate not found", apperrors.ErrCertificateNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewResourceNotFoundError("No academic records found"), http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"validation failure", apperrors.NewValidationError("Missing required fields"), http.StatusBadRequest},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"file type", apperrors.ErrFileTypeNotAllowed, http.StatusBadRequest},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{"not pending", apperrors.ErrCertificateNotPending, http.StatusBadRequest},
		{"unknown", errors.New("pq: column does not exist"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithError(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if _, ok := body["message"]; !ok {
				t.Errorf("body %v lacks message field", body)
			}
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	w := performWithError(t, errors.New("pgx: connection refused to 10.0.0.5"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["message"] != "Internal server error" {
		t.Errorf("message = %q, want generic internal error", body["message"])
	}
}

func TestHandleAPIErrorSurfacesClientMessage(t *testing.T) {
	w := performWithError(t, apperrors.NewValidationError("Name is required"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["message"] != "Name is required" {
		t.Errorf("message = %q, want validation message", body["message"])
	}
}
