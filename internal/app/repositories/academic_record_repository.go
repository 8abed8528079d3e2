package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// AcademicRecordRepository handles academic record database operations.
// Records are read-only from this system.
type AcademicRecordRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAcademicRecordRepository creates a new AcademicRecordRepository
func NewAcademicRecordRepository(db *pgxpool.Pool) *AcademicRecordRepository {
	return &AcademicRecordRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByStudent retrieves a student's academic records ordered by standard
// descending then subject ascending.
func (r *AcademicRecordRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.AcademicRecord, error) {
	sql, args, err := r.sb.Select(
		"record_id", "student_id", "school_standard", "subject",
		"marks", "percentage", "grade", "academic_year", "created_at",
	).
		From("academic_records").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("school_standard DESC", "subject ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build academic records query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing academic records query")
		return nil, fmt.Errorf("error querying academic records: %w", err)
	}
	defer rows.Close()

	records := []*models.AcademicRecord{}
	for rows.Next() {
		record := &models.AcademicRecord{}
		err := rows.Scan(
			&record.RecordID,
			&record.StudentID,
			&record.SchoolStandard,
			&record.Subject,
			&record.Marks,
			&record.Percentage,
			&record.Grade,
			&record.AcademicYear,
			&record.CreatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning academic record row")
			return nil, fmt.Errorf("error scanning academic record row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating academic record rows")
		return nil, fmt.Errorf("error iterating academic record rows: %w", err)
	}

	return records, nil
}
