package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/dberrors"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// ErrDocumentNotFound is returned when a document lookup matches no row.
var ErrDocumentNotFound = ErrNotFound

// DocumentRepository handles document metadata database operations.
// Whether the optional relative_path column exists is detected once at
// startup via DetectSchema rather than retried per insert.
type DocumentRepository struct {
	db              *pgxpool.Pool
	sb              squirrel.StatementBuilderType
	hasRelativePath bool
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// DetectSchema probes information_schema for the optional relative_path
// column. Must be called once before Create is used.
func (r *DocumentRepository) DetectSchema(ctx context.Context) error {
	const probe = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = 'documents' AND column_name = 'relative_path'
		)
	`
	if err := r.db.QueryRow(ctx, probe).Scan(&r.hasRelativePath); err != nil {
		return fmt.Errorf("error probing documents schema: %w", err)
	}
	logger.Info().Bool("hasRelativePath", r.hasRelativePath).Msg("Documents schema capability detected")
	return nil
}

// GetByStudent retrieves a student's documents, newest upload first.
func (r *DocumentRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Document, error) {
	columns := []string{"document_id", "student_id", "document_type", "file_name", "file_path", "upload_date"}
	if r.hasRelativePath {
		columns = append(columns, "relative_path")
	}

	sql, args, err := r.sb.Select(columns...).
		From("documents").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("upload_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build documents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing documents query")
		return nil, fmt.Errorf("error querying documents: %w", err)
	}
	defer rows.Close()

	documents := []*models.Document{}
	for rows.Next() {
		doc := &models.Document{}
		dest := []interface{}{
			&doc.DocumentID, &doc.StudentID, &doc.DocumentType,
			&doc.FileName, &doc.FilePath, &doc.UploadDate,
		}
		if r.hasRelativePath {
			dest = append(dest, &doc.RelativePath)
		}
		if err := rows.Scan(dest...); err != nil {
			logger.Error().Err(err).Msg("Error scanning document row")
			return nil, fmt.Errorf("error scanning document row: %w", err)
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating document rows")
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return documents, nil
}

// GetByIDForStudent retrieves a document that must belong to the student.
func (r *DocumentRepository) GetByIDForStudent(ctx context.Context, documentID, studentID int64) (*models.Document, error) {
	sql, args, err := r.sb.Select("document_id", "student_id", "document_type", "file_name", "file_path", "upload_date").
		From("documents").
		Where(squirrel.Eq{"document_id": documentID, "student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get document query: %w", err)
	}

	doc := &models.Document{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&doc.DocumentID, &doc.StudentID, &doc.DocumentType,
		&doc.FileName, &doc.FilePath, &doc.UploadDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		logger.Error().Err(err).Int64("documentID", documentID).Msg("Error scanning document row")
		return nil, fmt.Errorf("error getting document: %w", err)
	}

	return doc, nil
}

// Create inserts a document metadata row and returns the new id.
// The relative_path column is included only when the schema supports it.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) (int64, error) {
	builder := r.sb.Insert("documents").
		Columns("student_id", "document_type", "file_name", "file_path", "upload_date").
		Values(doc.StudentID, doc.DocumentType, doc.FileName, doc.FilePath, doc.UploadDate).
		Suffix("RETURNING document_id")

	if r.hasRelativePath {
		builder = r.sb.Insert("documents").
			Columns("student_id", "document_type", "file_name", "file_path", "relative_path", "upload_date").
			Values(doc.StudentID, doc.DocumentType, doc.FileName, doc.FilePath, doc.RelativePath, doc.UploadDate).
			Suffix("RETURNING document_id")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create document query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUndefinedColumn(err) {
			logger.Error().Err(err).Msg("Documents schema changed after startup probe")
		}
		logger.Error().Err(err).Int64("studentID", doc.StudentID).Msg("Error executing create document query")
		return 0, fmt.Errorf("error creating document: %w", err)
	}

	return id, nil
}

// Delete removes a document row that must belong to the student.
func (r *DocumentRepository) Delete(ctx context.Context, documentID, studentID int64) error {
	sql, args, err := r.sb.Delete("documents").
		Where(squirrel.Eq{"document_id": documentID, "student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete document query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("documentID", documentID).Msg("Error executing delete document query")
		return fmt.Errorf("error deleting document: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
