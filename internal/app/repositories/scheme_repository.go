package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// SchemeRepository handles scheme history database operations
type SchemeRepository struct {
	db *pgxpool.Pool
}

// NewSchemeRepository creates a new SchemeRepository
func NewSchemeRepository(db *pgxpool.Pool) *SchemeRepository {
	return &SchemeRepository{db: db}
}

// GetByStudent retrieves a student's scheme enrollment history joined with
// scheme names, most recent enrollment first.
func (r *SchemeRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.SchemeHistory, error) {
	query := `
		SELECT sh.history_id, sh.student_id, sh.scheme_id, s.name AS scheme_name,
		       sh.start_date, sh.end_date, sh.benefits, sh.details
		FROM scheme_history sh
		JOIN schemes s ON sh.scheme_id = s.scheme_id
		WHERE sh.student_id = $1
		ORDER BY sh.start_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing scheme history query")
		return nil, fmt.Errorf("error querying scheme history: %w", err)
	}
	defer rows.Close()

	history := []*models.SchemeHistory{}
	for rows.Next() {
		h := &models.SchemeHistory{}
		err := rows.Scan(
			&h.HistoryID,
			&h.StudentID,
			&h.SchemeID,
			&h.SchemeName,
			&h.StartDate,
			&h.EndDate,
			&h.Benefits,
			&h.Details,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning scheme history row")
			return nil, fmt.Errorf("error scanning scheme history row: %w", err)
		}
		history = append(history, h)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating scheme history rows")
		return nil, fmt.Errorf("error iterating scheme history rows: %w", err)
	}

	return history, nil
}
