package dto

import (
	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/helpers"
)

// DocumentData is a document row prepared for serialization, including the
// URL under which the stored file is served.
type DocumentData struct {
	DocumentID   int64   `json:"document_id"`
	StudentID    int64   `json:"student_id"`
	DocumentType *string `json:"document_type"`
	FileName     string  `json:"file_name"`
	FilePath     string  `json:"file_path"`
	FileURL      string  `json:"file_url"`
	UploadDate   string  `json:"upload_date"`
}

// NewDocumentData maps a document row to its response shape.
func NewDocumentData(d *models.Document, fileURL string) DocumentData {
	return DocumentData{
		DocumentID:   d.DocumentID,
		StudentID:    d.StudentID,
		DocumentType: d.DocumentType,
		FileName:     d.FileName,
		FilePath:     d.FilePath,
		FileURL:      fileURL,
		UploadDate:   helpers.FormatDate(d.UploadDate),
	}
}

// DocumentsResponse is the body of GET /api/students/:id/documents.
// Documents is always non-nil so an empty result serializes as [].
type DocumentsResponse struct {
	Documents []DocumentData `json:"documents"`
}

// UploadDocumentResponse is the body of POST /api/students/:id/documents/upload
type UploadDocumentResponse struct {
	Message  string       `json:"message"`
	Document DocumentData `json:"document"`
}
