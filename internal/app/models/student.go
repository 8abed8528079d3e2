package models

import "time"

// Student represents a row in the students table. Password is never
// serialized into responses. SchoolName is populated by joining schools.
type Student struct {
	StudentID       int64      `json:"student_id" db:"student_id"`
	Name            string     `json:"name" db:"name"`
	DOB             *time.Time `json:"dob,omitempty" db:"dob"`
	ContactInfo     *string    `json:"contact_info,omitempty" db:"contact_info"`
	CurrentSchoolID *int64     `json:"current_school_id,omitempty" db:"current_school_id"`
	Username        string     `json:"username" db:"username"`
	Password        string     `json:"-" db:"password"`
	SchoolName      *string    `json:"school_name,omitempty" db:"school_name"`
}
