package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
)

type fakeStudentService struct {
	profile       *dto.StudentProfile
	profiles      []dto.StudentProfile
	records       []dto.AcademicRecordData
	schemes       []dto.SchemeData
	schools       []models.School
	comprehensive *dto.ComprehensiveStudentResponse
	err           error
}

func (f *fakeStudentService) GetProfile(ctx context.Context, studentID int64) (*dto.StudentProfile, error) {
	return f.profile, f.err
}

func (f *fakeStudentService) GetAcademicRecords(ctx context.Context, studentID int64) ([]dto.AcademicRecordData, error) {
	return f.records, f.err
}

func (f *fakeStudentService) GetAcademicRecordsStrict(ctx context.Context, studentID int64) ([]dto.AcademicRecordData, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.records) == 0 {
		return nil, apperrors.NewResourceNotFoundError("No academic records found for this student")
	}
	return f.records, nil
}

func (f *fakeStudentService) GetSchemes(ctx context.Context, studentID int64) ([]dto.SchemeData, error) {
	return f.schemes, f.err
}

func (f *fakeStudentService) ListStudents(ctx context.Context) ([]dto.StudentProfile, error) {
	return f.profiles, f.err
}

func (f *fakeStudentService) ListSchools(ctx context.Context) ([]models.School, error) {
	return f.schools, f.err
}

func (f *fakeStudentService) UpdateStudent(ctx context.Context, studentID int64, req *dto.UpdateStudentRequest) (*dto.StudentProfile, error) {
	return f.profile, f.err
}

func (f *fakeStudentService) GetComprehensiveDetails(ctx context.Context, studentID int64) (*dto.ComprehensiveStudentResponse, error) {
	return f.comprehensive, f.err
}

func newAdminRouter(svc *fakeStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewAdminController(svc)
	router.GET("/api/admin/students", ctrl.ListStudents)
	router.GET("/api/admin/students/:id", ctrl.GetStudent)
	router.GET("/api/admin/students/:id/comprehensive", ctrl.GetComprehensiveDetails)
	router.GET("/api/admin/academic-records", ctrl.GetAcademicRecords)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestAcademicRecordsRequiresStudentID(t *testing.T) {
	router := newAdminRouter(&fakeStudentService{})

	w := get(router, "/api/admin/academic-records")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = get(router, "/api/admin/academic-records?studentId=abc")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status for bad id = %d, want 400", w.Code)
	}
}

func TestAcademicRecordsEmptyIsNotFound(t *testing.T) {
	router := newAdminRouter(&fakeStudentService{})

	w := get(router, "/api/admin/academic-records?studentId=5")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAcademicRecordsSuccess(t *testing.T) {
	router := newAdminRouter(&fakeStudentService{records: []dto.AcademicRecordData{
		{RecordID: 1, StudentID: 5, Subject: "Math", AcademicYear: "2024-25"},
	}})

	w := get(router, "/api/admin/academic-records?studentId=5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body dto.RecordsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if len(body.Records) != 1 || body.Records[0].Subject != "Math" {
		t.Errorf("body = %+v", body)
	}
}

func TestGetStudentNotFound(t *testing.T) {
	router := newAdminRouter(&fakeStudentService{err: apperrors.ErrStudentNotFound})

	w := get(router, "/api/admin/students/99")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestComprehensiveDetailsRendersEmptySections(t *testing.T) {
	router := newAdminRouter(&fakeStudentService{comprehensive: &dto.ComprehensiveStudentResponse{
		Student:         dto.StudentProfile{StudentID: 1, Name: "Ravi"},
		AcademicRecords: []dto.AcademicRecordData{},
		Schemes:         []dto.SchemeData{},
	}})

	w := get(router, "/api/admin/students/1/comprehensive")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if string(body["academicRecords"]) != "[]" {
		t.Errorf("academicRecords = %s, want []", body["academicRecords"])
	}
	if string(body["schemes"]) != "[]" {
		t.Errorf("schemes = %s, want []", body["schemes"])
	}
}

func TestListStudents(t *testing.T) {
	router := newAdminRouter(&fakeStudentService{profiles: []dto.StudentProfile{
		{StudentID: 1, Name: "Ravi", Username: "ravi"},
		{StudentID: 2, Name: "Meena", Username: "meena"},
	}})

	w := get(router, "/api/admin/students")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body dto.StudentsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if len(body.Students) != 2 {
		t.Errorf("students = %+v", body.Students)
	}
}
