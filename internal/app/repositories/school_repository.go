package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// SchoolRepository handles school database operations
type SchoolRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all schools ordered by name.
func (r *SchoolRepository) GetAll(ctx context.Context) ([]models.School, error) {
	sql, args, err := r.sb.Select("school_id", "name").
		From("schools").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all schools query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all schools query")
		return nil, fmt.Errorf("error querying schools: %w", err)
	}
	defer rows.Close()

	schools := []models.School{}
	for rows.Next() {
		school := models.School{}
		if err := rows.Scan(&school.SchoolID, &school.Name); err != nil {
			logger.Error().Err(err).Msg("Error scanning school row")
			return nil, fmt.Errorf("error scanning school row: %w", err)
		}
		schools = append(schools, school)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating school rows")
		return nil, fmt.Errorf("error iterating school rows: %w", err)
	}

	return schools, nil
}
