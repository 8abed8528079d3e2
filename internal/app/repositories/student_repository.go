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

// ErrStudentNotFound is returned when a student lookup matches no row.
var ErrStudentNotFound = ErrNotFound

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentWithSchoolQuery = `
	SELECT s.student_id, s.name, s.dob, s.contact_info, s.current_school_id,
	       s.username, s.password, sch.name AS school_name
	FROM students s
	LEFT JOIN schools sch ON s.current_school_id = sch.school_id
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.StudentID,
		&student.Name,
		&student.DOB,
		&student.ContactInfo,
		&student.CurrentSchoolID,
		&student.Username,
		&student.Password,
		&student.SchoolName,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetByID retrieves a student by ID with the school name joined in.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, studentWithSchoolQuery+" WHERE s.student_id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}
	return student, nil
}

// GetAll retrieves all students with school names, ordered by student id.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, studentWithSchoolQuery+" ORDER BY s.student_id")
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during get all")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// FindByCredentials looks up a student by exact username/password equality.
func (r *StudentRepository) FindByCredentials(ctx context.Context, username, password string) (*models.Student, error) {
	sql, args, err := r.sb.Select("student_id", "name", "username").
		From("students").
		Where(squirrel.Eq{"username": username, "password": password}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student credentials query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.StudentID, &student.Name, &student.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error querying student credentials")
		return nil, fmt.Errorf("error checking student credentials: %w", err)
	}

	return student, nil
}

// Update overwrites the three writable student fields (name, dob,
// contact_info) and returns ErrStudentNotFound for an unknown id.
func (r *StudentRepository) Update(ctx context.Context, id int64, name string, dob *time.Time, contactInfo *string) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":         name,
			"dob":          dob,
			"contact_info": contactInfo,
		}).
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}
