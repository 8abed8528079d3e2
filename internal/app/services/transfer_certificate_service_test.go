package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/repositories"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
)

type fakeCertificates struct {
	certs  map[int64]*models.TransferCertificate
	nextID int64
}

func newFakeCertificates() *fakeCertificates {
	return &fakeCertificates{certs: map[int64]*models.TransferCertificate{}, nextID: 1}
}

func (f *fakeCertificates) Create(ctx context.Context, tc *models.TransferCertificate) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *tc
	stored.TCID = id
	f.certs[id] = &stored
	return id, nil
}

func (f *fakeCertificates) GetByID(ctx context.Context, tcID int64) (*models.TransferCertificate, error) {
	tc, ok := f.certs[tcID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return tc, nil
}

func (f *fakeCertificates) GetByIDForStudent(ctx context.Context, tcID, studentID int64) (*models.TransferCertificate, error) {
	tc, ok := f.certs[tcID]
	if !ok || tc.StudentID != studentID {
		return nil, repositories.ErrNotFound
	}
	return tc, nil
}

func (f *fakeCertificates) GetByStudent(ctx context.Context, studentID int64) ([]*models.TransferCertificate, error) {
	out := []*models.TransferCertificate{}
	for _, tc := range f.certs {
		if tc.StudentID == studentID {
			out = append(out, tc)
		}
	}
	return out, nil
}

func (f *fakeCertificates) GetAll(ctx context.Context) ([]*models.TransferCertificate, error) {
	out := []*models.TransferCertificate{}
	for _, tc := range f.certs {
		out = append(out, tc)
	}
	return out, nil
}

func (f *fakeCertificates) UpdateStatus(ctx context.Context, tcID int64, status string, comments, processedBy *string, processedDate time.Time) error {
	tc, ok := f.certs[tcID]
	if !ok {
		return repositories.ErrNotFound
	}
	tc.Status = status
	tc.Comments = comments
	tc.ProcessedBy = processedBy
	tc.ProcessedDate = &processedDate
	return nil
}

func (f *fakeCertificates) Delete(ctx context.Context, tcID int64) error {
	if _, ok := f.certs[tcID]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.certs, tcID)
	return nil
}

var testToday = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestCertificateService(store *fakeCertificates) *transferCertificateService {
	svc := NewTransferCertificateService(store).(*transferCertificateService)
	svc.now = func() time.Time { return testToday }
	return svc
}

func TestApplyMissingFields(t *testing.T) {
	svc := newTestCertificateService(newFakeCertificates())

	tests := []dto.ApplyCertificateRequest{
		{DestinationSchool: "", Reason: "moving", TransferDate: "2025-07-01"},
		{DestinationSchool: "GHS Pune", Reason: "", TransferDate: "2025-07-01"},
		{DestinationSchool: "GHS Pune", Reason: "moving", TransferDate: ""},
	}

	for _, req := range tests {
		_, err := svc.Apply(context.Background(), 1, &req)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("Apply(%+v) error = %v, want validation failure", req, err)
		}
	}
}

func TestApplyRejectsBadDate(t *testing.T) {
	svc := newTestCertificateService(newFakeCertificates())

	req := dto.ApplyCertificateRequest{DestinationSchool: "GHS Pune", Reason: "moving", TransferDate: "01-07-2025"}
	_, err := svc.Apply(context.Background(), 1, &req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("Apply error = %v, want validation failure", err)
	}
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	store := newFakeCertificates()
	svc := newTestCertificateService(store)

	req := dto.ApplyCertificateRequest{DestinationSchool: "GHS Pune", Reason: "family relocation", TransferDate: "2025-07-01"}
	data, err := svc.Apply(context.Background(), 4, &req)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if data.Status != models.CertificateStatusPending {
		t.Errorf("Status = %q, want pending", data.Status)
	}
	if data.ApplicationDate != "2025-06-01" {
		t.Errorf("ApplicationDate = %q, want 2025-06-01", data.ApplicationDate)
	}
	if data.TransferDate != "2025-07-01" {
		t.Errorf("TransferDate = %q", data.TransferDate)
	}
	if data.StudentID != 4 {
		t.Errorf("StudentID = %d", data.StudentID)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := newFakeCertificates()
	svc := newTestCertificateService(store)

	for _, status := range []string{"", "pending", "maybe", "APPROVED"} {
		_, err := svc.UpdateStatus(context.Background(), 1, &dto.UpdateCertificateRequest{Status: status})
		if !errors.Is(err, apperrors.ErrInvalidStatus) {
			t.Errorf("UpdateStatus(%q) error = %v, want invalid status", status, err)
		}
	}
}

func TestUpdateStatusApproves(t *testing.T) {
	store := newFakeCertificates()
	id, _ := store.Create(context.Background(), &models.TransferCertificate{
		StudentID: 2, Status: models.CertificateStatusPending,
	})
	svc := newTestCertificateService(store)

	comments := "verified records"
	processedBy := "Head Admin"
	data, err := svc.UpdateStatus(context.Background(), id, &dto.UpdateCertificateRequest{
		Status:      models.CertificateStatusApproved,
		Comments:    &comments,
		ProcessedBy: &processedBy,
	})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	if data.Status != models.CertificateStatusApproved {
		t.Errorf("Status = %q", data.Status)
	}
	if data.ProcessedDate == nil || *data.ProcessedDate != "2025-06-01" {
		t.Errorf("ProcessedDate = %v, want 2025-06-01", data.ProcessedDate)
	}
	if data.Comments == nil || *data.Comments != comments {
		t.Errorf("Comments = %v", data.Comments)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := newTestCertificateService(newFakeCertificates())

	_, err := svc.UpdateStatus(context.Background(), 99, &dto.UpdateCertificateRequest{Status: models.CertificateStatusRejected})
	if !errors.Is(err, apperrors.ErrCertificateNotFound) {
		t.Errorf("UpdateStatus error = %v, want certificate not found", err)
	}
}

func TestDeleteByStudentOnlyPending(t *testing.T) {
	store := newFakeCertificates()
	approvedID, _ := store.Create(context.Background(), &models.TransferCertificate{
		StudentID: 1, Status: models.CertificateStatusApproved,
	})
	pendingID, _ := store.Create(context.Background(), &models.TransferCertificate{
		StudentID: 1, Status: models.CertificateStatusPending,
	})
	svc := newTestCertificateService(store)

	err := svc.DeleteByStudent(context.Background(), approvedID, 1)
	if !errors.Is(err, apperrors.ErrCertificateNotPending) {
		t.Errorf("DeleteByStudent(approved) error = %v, want not pending", err)
	}
	if _, ok := store.certs[approvedID]; !ok {
		t.Error("approved application was deleted")
	}

	if err := svc.DeleteByStudent(context.Background(), pendingID, 1); err != nil {
		t.Errorf("DeleteByStudent(pending) = %v", err)
	}
	if _, ok := store.certs[pendingID]; ok {
		t.Error("pending application still present after delete")
	}
}

func TestDeleteByStudentOtherStudentsApplication(t *testing.T) {
	store := newFakeCertificates()
	id, _ := store.Create(context.Background(), &models.TransferCertificate{
		StudentID: 7, Status: models.CertificateStatusPending,
	})
	svc := newTestCertificateService(store)

	err := svc.DeleteByStudent(context.Background(), id, 1)
	if !errors.Is(err, apperrors.ErrCertificateNotFound) {
		t.Errorf("DeleteByStudent error = %v, want certificate not found", err)
	}
}

func TestDeleteByAdminAnyStatus(t *testing.T) {
	store := newFakeCertificates()
	id, _ := store.Create(context.Background(), &models.TransferCertificate{
		StudentID: 1, Status: models.CertificateStatusRejected,
	})
	svc := newTestCertificateService(store)

	if err := svc.DeleteByAdmin(context.Background(), id); err != nil {
		t.Errorf("DeleteByAdmin = %v", err)
	}

	err := svc.DeleteByAdmin(context.Background(), id)
	if !errors.Is(err, apperrors.ErrCertificateNotFound) {
		t.Errorf("second DeleteByAdmin error = %v, want certificate not found", err)
	}
}
