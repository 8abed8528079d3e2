package models

import "time"

// Scheme represents a benefit program a student may be enrolled in.
type Scheme struct {
	SchemeID    int64   `json:"scheme_id" db:"scheme_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

// SchemeHistory represents a student's enrollment record in a scheme.
// SchemeName is populated by joining schemes.
type SchemeHistory struct {
	HistoryID  int64      `json:"history_id" db:"history_id"`
	StudentID  int64      `json:"student_id" db:"student_id"`
	SchemeID   int64      `json:"scheme_id" db:"scheme_id"`
	SchemeName string     `json:"scheme_name" db:"scheme_name"`
	StartDate  time.Time  `json:"start_date" db:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty" db:"end_date"`
	Benefits   *string    `json:"benefits,omitempty" db:"benefits"`
	Details    *string    `json:"details,omitempty" db:"details"`
}
