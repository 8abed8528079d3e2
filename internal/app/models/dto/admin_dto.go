package dto

import "github.com/gmps/schooladmin/internal/app/models"

// StudentsResponse is the body of GET /api/admin/students
type StudentsResponse struct {
	Students []StudentProfile `json:"students"`
}

// StudentResponse is the body of GET /api/admin/students/:id
type StudentResponse struct {
	Student StudentProfile `json:"student"`
}

// ComprehensiveStudentResponse is the body of
// GET /api/admin/students/:id/comprehensive. Secondary sections degrade to
// empty arrays when their lookups fail.
type ComprehensiveStudentResponse struct {
	Student         StudentProfile       `json:"student"`
	AcademicRecords []AcademicRecordData `json:"academicRecords"`
	Schemes         []SchemeData         `json:"schemes"`
}

// RecordsResponse is the body of GET /api/admin/academic-records
type RecordsResponse struct {
	Records []AcademicRecordData `json:"records"`
}

// SchoolsResponse is the body of GET /api/admin/schools
type SchoolsResponse struct {
	Schools []models.School `json:"schools"`
}

// TablesResponse is the body of the diagnostic GET /
type TablesResponse struct {
	Tables []string `json:"tables"`
}
