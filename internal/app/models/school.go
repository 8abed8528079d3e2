package models

// School represents a row in the schools table.
type School struct {
	SchoolID int64  `json:"school_id" db:"school_id"`
	Name     string `json:"name" db:"name"`
}
