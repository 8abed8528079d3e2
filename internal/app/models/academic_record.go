package models

import "time"

// DefaultAcademicYear is used when a record's academic_year column is NULL.
const DefaultAcademicYear = "2024-25"

// AcademicRecord represents a row in the academic_records table.
// Records are read-only from this system's perspective.
type AcademicRecord struct {
	RecordID       int64      `json:"record_id" db:"record_id"`
	StudentID      int64      `json:"student_id" db:"student_id"`
	SchoolStandard string     `json:"school_standard" db:"school_standard"`
	Subject        string     `json:"subject" db:"subject"`
	Marks          float64    `json:"marks" db:"marks"`
	Percentage     float64    `json:"percentage" db:"percentage"`
	Grade          string     `json:"grade" db:"grade"`
	AcademicYear   *string    `json:"academic_year,omitempty" db:"academic_year"`
	CreatedAt      *time.Time `json:"created_at,omitempty" db:"created_at"`
}
