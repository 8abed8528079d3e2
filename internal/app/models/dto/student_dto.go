package dto

import (
	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/helpers"
)

// StudentProfile is a student row prepared for serialization: dates are
// ISO-8601 text and the password column is never carried over.
type StudentProfile struct {
	StudentID       int64   `json:"student_id"`
	Name            string  `json:"name"`
	DOB             *string `json:"dob"`
	ContactInfo     *string `json:"contact_info"`
	CurrentSchoolID *int64  `json:"current_school_id"`
	Username        string  `json:"username"`
	SchoolName      *string `json:"school_name"`
}

// NewStudentProfile maps a student row to its response shape.
func NewStudentProfile(s *models.Student) StudentProfile {
	return StudentProfile{
		StudentID:       s.StudentID,
		Name:            s.Name,
		DOB:             helpers.FormatNullableDate(s.DOB),
		ContactInfo:     s.ContactInfo,
		CurrentSchoolID: s.CurrentSchoolID,
		Username:        s.Username,
		SchoolName:      s.SchoolName,
	}
}

// NewStudentProfiles maps a list of student rows.
func NewStudentProfiles(students []*models.Student) []StudentProfile {
	out := make([]StudentProfile, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentProfile(s))
	}
	return out
}

// ProfileResponse is the body of GET /api/students/:id
type ProfileResponse struct {
	Profile StudentProfile `json:"profile"`
}

// UpdateStudentRequest is the body of PUT /api/admin/students/:id.
// Only these three fields are writable from this system.
type UpdateStudentRequest struct {
	Name        string  `json:"name"`
	DOB         *string `json:"dob"`
	ContactInfo *string `json:"contact_info"`
}

// UpdateStudentResponse is the body of PUT /api/admin/students/:id
type UpdateStudentResponse struct {
	Message string         `json:"message"`
	Student StudentProfile `json:"student"`
}

// AcademicRecordData is an academic record prepared for serialization.
type AcademicRecordData struct {
	RecordID       int64   `json:"record_id"`
	StudentID      int64   `json:"student_id"`
	SchoolStandard string  `json:"school_standard"`
	Subject        string  `json:"subject"`
	Marks          float64 `json:"marks"`
	Percentage     float64 `json:"percentage"`
	Grade          string  `json:"grade"`
	AcademicYear   string  `json:"academic_year"`
	CreatedAt      *string `json:"created_at,omitempty"`
}

// NewAcademicRecordData maps a record row, defaulting a missing academic year.
func NewAcademicRecordData(r *models.AcademicRecord) AcademicRecordData {
	year := models.DefaultAcademicYear
	if r.AcademicYear != nil && *r.AcademicYear != "" {
		year = *r.AcademicYear
	}
	return AcademicRecordData{
		RecordID:       r.RecordID,
		StudentID:      r.StudentID,
		SchoolStandard: r.SchoolStandard,
		Subject:        r.Subject,
		Marks:          r.Marks,
		Percentage:     r.Percentage,
		Grade:          r.Grade,
		AcademicYear:   year,
		CreatedAt:      helpers.FormatNullableDate(r.CreatedAt),
	}
}

// NewAcademicRecordList maps a list of record rows, always returning a
// non-nil slice so empty results serialize as [].
func NewAcademicRecordList(records []*models.AcademicRecord) []AcademicRecordData {
	out := make([]AcademicRecordData, 0, len(records))
	for _, r := range records {
		out = append(out, NewAcademicRecordData(r))
	}
	return out
}

// AcademicRecordsResponse is the body of GET /api/students/:id/academic-records
type AcademicRecordsResponse struct {
	AcademicRecords []AcademicRecordData `json:"academicRecords"`
}

// SchemeData is a scheme-history row prepared for serialization.
type SchemeData struct {
	HistoryID  int64   `json:"history_id"`
	StudentID  int64   `json:"student_id"`
	SchemeID   int64   `json:"scheme_id"`
	SchemeName string  `json:"scheme_name"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Benefits   *string `json:"benefits"`
	Details    *string `json:"details"`
}

// NewSchemeData maps a scheme-history row.
func NewSchemeData(h *models.SchemeHistory) SchemeData {
	return SchemeData{
		HistoryID:  h.HistoryID,
		StudentID:  h.StudentID,
		SchemeID:   h.SchemeID,
		SchemeName: h.SchemeName,
		StartDate:  helpers.FormatDate(h.StartDate),
		EndDate:    helpers.FormatNullableDate(h.EndDate),
		Benefits:   h.Benefits,
		Details:    h.Details,
	}
}

// NewSchemeList maps a list of scheme-history rows.
func NewSchemeList(history []*models.SchemeHistory) []SchemeData {
	out := make([]SchemeData, 0, len(history))
	for _, h := range history {
		out = append(out, NewSchemeData(h))
	}
	return out
}

// SchemesResponse is the body of GET /api/students/:id/schemes
type SchemesResponse struct {
	Schemes []SchemeData `json:"schemes"`
}
