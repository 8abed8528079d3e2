package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// ErrCertificateNotFound is returned when a certificate lookup matches no row.
var ErrCertificateNotFound = ErrNotFound

// TransferCertificateRepository handles transfer certificate database operations
type TransferCertificateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTransferCertificateRepository creates a new TransferCertificateRepository
func NewTransferCertificateRepository(db *pgxpool.Pool) *TransferCertificateRepository {
	return &TransferCertificateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const certificateWithStudentQuery = `
	SELECT tc.tc_id, tc.student_id, tc.application_date, tc.destination_school,
	       tc.reason, tc.transfer_date, tc.status, tc.comments,
	       tc.processed_by, tc.processed_date, s.name AS student_name
	FROM transfer_certificates tc
	JOIN students s ON tc.student_id = s.student_id
`

func scanCertificate(row pgx.Row) (*models.TransferCertificate, error) {
	tc := &models.TransferCertificate{}
	err := row.Scan(
		&tc.TCID,
		&tc.StudentID,
		&tc.ApplicationDate,
		&tc.DestinationSchool,
		&tc.Reason,
		&tc.TransferDate,
		&tc.Status,
		&tc.Comments,
		&tc.ProcessedBy,
		&tc.ProcessedDate,
		&tc.StudentName,
	)
	if err != nil {
		return nil, err
	}
	return tc, nil
}

// Create inserts a new application and returns the new id.
func (r *TransferCertificateRepository) Create(ctx context.Context, tc *models.TransferCertificate) (int64, error) {
	sql, args, err := r.sb.Insert("transfer_certificates").
		Columns("student_id", "application_date", "destination_school", "reason", "transfer_date", "status").
		Values(tc.StudentID, tc.ApplicationDate, tc.DestinationSchool, tc.Reason, tc.TransferDate, tc.Status).
		Suffix("RETURNING tc_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create certificate query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", tc.StudentID).Msg("Error executing create certificate query")
		return 0, fmt.Errorf("error creating transfer certificate: %w", err)
	}

	return id, nil
}

// GetByID retrieves a certificate with the student name joined in.
func (r *TransferCertificateRepository) GetByID(ctx context.Context, tcID int64) (*models.TransferCertificate, error) {
	tc, err := scanCertificate(r.db.QueryRow(ctx, certificateWithStudentQuery+" WHERE tc.tc_id = $1", tcID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCertificateNotFound
		}
		logger.Error().Err(err).Int64("tcID", tcID).Msg("Error scanning certificate row")
		return nil, fmt.Errorf("error getting transfer certificate: %w", err)
	}
	return tc, nil
}

// GetByIDForStudent retrieves a certificate that must belong to the student.
func (r *TransferCertificateRepository) GetByIDForStudent(ctx context.Context, tcID, studentID int64) (*models.TransferCertificate, error) {
	tc, err := scanCertificate(r.db.QueryRow(ctx,
		certificateWithStudentQuery+" WHERE tc.tc_id = $1 AND tc.student_id = $2", tcID, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCertificateNotFound
		}
		logger.Error().Err(err).Int64("tcID", tcID).Msg("Error scanning certificate row")
		return nil, fmt.Errorf("error getting transfer certificate: %w", err)
	}
	return tc, nil
}

func (r *TransferCertificateRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.TransferCertificate, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing certificate list query")
		return nil, fmt.Errorf("error querying transfer certificates: %w", err)
	}
	defer rows.Close()

	certs := []*models.TransferCertificate{}
	for rows.Next() {
		tc, err := scanCertificate(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning certificate row")
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certs = append(certs, tc)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating certificate rows")
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}

	return certs, nil
}

// GetByStudent retrieves a student's applications, newest first.
func (r *TransferCertificateRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.TransferCertificate, error) {
	return r.list(ctx, certificateWithStudentQuery+" WHERE tc.student_id = $1 ORDER BY tc.application_date DESC", studentID)
}

// GetAll retrieves every application, newest first.
func (r *TransferCertificateRepository) GetAll(ctx context.Context) ([]*models.TransferCertificate, error) {
	return r.list(ctx, certificateWithStudentQuery+" ORDER BY tc.application_date DESC")
}

// UpdateStatus sets the processed fields on a certificate.
func (r *TransferCertificateRepository) UpdateStatus(ctx context.Context, tcID int64, status string, comments, processedBy *string, processedDate time.Time) error {
	sql, args, err := r.sb.Update("transfer_certificates").
		SetMap(map[string]interface{}{
			"status":         status,
			"comments":       comments,
			"processed_by":   processedBy,
			"processed_date": processedDate,
		}).
		Where(squirrel.Eq{"tc_id": tcID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update certificate query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("tcID", tcID).Msg("Error executing update certificate query")
		return fmt.Errorf("error updating transfer certificate: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCertificateNotFound
	}

	return nil
}

// Delete removes a certificate by id.
func (r *TransferCertificateRepository) Delete(ctx context.Context, tcID int64) error {
	sql, args, err := r.sb.Delete("transfer_certificates").
		Where(squirrel.Eq{"tc_id": tcID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete certificate query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("tcID", tcID).Msg("Error executing delete certificate query")
		return fmt.Errorf("error deleting transfer certificate: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCertificateNotFound
	}

	return nil
}
