package models

import "time"

// Document represents a row in the documents table. FileName carries the
// timestamp-prefixed stored name; FilePath is the path relative to the
// server root. RelativePath is only persisted when the schema has the
// column (decided once at startup).
type Document struct {
	DocumentID   int64     `json:"document_id" db:"document_id"`
	StudentID    int64     `json:"student_id" db:"student_id"`
	DocumentType *string   `json:"document_type,omitempty" db:"document_type"`
	FileName     string    `json:"file_name" db:"file_name"`
	FilePath     string    `json:"file_path" db:"file_path"`
	RelativePath *string   `json:"relative_path,omitempty" db:"relative_path"`
	UploadDate   time.Time `json:"upload_date" db:"upload_date"`
}
