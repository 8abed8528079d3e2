package models

import "time"

// Transfer certificate statuses. A certificate is created pending and moves
// to a processed status through an admin update.
const (
	CertificateStatusPending  = "pending"
	CertificateStatusApproved = "approved"
	CertificateStatusRejected = "rejected"
)

// TransferCertificate represents a row in the transfer_certificates table.
// StudentName is populated by joining students.
type TransferCertificate struct {
	TCID              int64      `json:"tc_id" db:"tc_id"`
	StudentID         int64      `json:"student_id" db:"student_id"`
	ApplicationDate   time.Time  `json:"application_date" db:"application_date"`
	DestinationSchool string     `json:"destination_school" db:"destination_school"`
	Reason            string     `json:"reason" db:"reason"`
	TransferDate      time.Time  `json:"transfer_date" db:"transfer_date"`
	Status            string     `json:"status" db:"status"`
	Comments          *string    `json:"comments,omitempty" db:"comments"`
	ProcessedBy       *string    `json:"processed_by,omitempty" db:"processed_by"`
	ProcessedDate     *time.Time `json:"processed_date,omitempty" db:"processed_date"`
	StudentName       string     `json:"student_name,omitempty" db:"student_name"`
}
