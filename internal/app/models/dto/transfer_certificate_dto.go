package dto

import (
	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/helpers"
)

// ApplyCertificateRequest is the body of POST /api/students/:id/transfer-certificate
type ApplyCertificateRequest struct {
	DestinationSchool string `json:"destinationSchool"`
	Reason            string `json:"reason"`
	TransferDate      string `json:"transferDate"`
}

// UpdateCertificateRequest is the body of PATCH /api/admin/transfer-certificates/:id
type UpdateCertificateRequest struct {
	Status      string  `json:"status"`
	Comments    *string `json:"comments"`
	ProcessedBy *string `json:"processed_by"`
}

// CertificateData is a transfer certificate prepared for serialization.
type CertificateData struct {
	TCID              int64   `json:"tc_id"`
	StudentID         int64   `json:"student_id"`
	ApplicationDate   string  `json:"application_date"`
	DestinationSchool string  `json:"destination_school"`
	Reason            string  `json:"reason"`
	TransferDate      string  `json:"transfer_date"`
	Status            string  `json:"status"`
	Comments          *string `json:"comments"`
	ProcessedBy       *string `json:"processed_by"`
	ProcessedDate     *string `json:"processed_date"`
	StudentName       string  `json:"student_name,omitempty"`
}

// NewCertificateData maps a certificate row to its response shape.
func NewCertificateData(tc *models.TransferCertificate) CertificateData {
	return CertificateData{
		TCID:              tc.TCID,
		StudentID:         tc.StudentID,
		ApplicationDate:   helpers.FormatDate(tc.ApplicationDate),
		DestinationSchool: tc.DestinationSchool,
		Reason:            tc.Reason,
		TransferDate:      helpers.FormatDate(tc.TransferDate),
		Status:            tc.Status,
		Comments:          tc.Comments,
		ProcessedBy:       tc.ProcessedBy,
		ProcessedDate:     helpers.FormatNullableDate(tc.ProcessedDate),
		StudentName:       tc.StudentName,
	}
}

// NewCertificateList maps a list of certificate rows.
func NewCertificateList(certs []*models.TransferCertificate) []CertificateData {
	out := make([]CertificateData, 0, len(certs))
	for _, tc := range certs {
		out = append(out, NewCertificateData(tc))
	}
	return out
}

// CertificatesResponse is the body of the certificate list endpoints
type CertificatesResponse struct {
	TransferCertificates []CertificateData `json:"transferCertificates"`
}

// CertificateResponse is the body of the certificate create/update endpoints
type CertificateResponse struct {
	Message             string          `json:"message"`
	TransferCertificate CertificateData `json:"transferCertificate"`
}
