package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmps/schooladmin/internal/pkg/dberrors"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// ErrUnknownTable is returned when a table name is not in the allowlist or
// does not exist in the database.
var ErrUnknownTable = errors.New("unknown table")

// allowedTables is the fixed set of tables the diagnostic routes may read.
// Table names are interpolated into SQL, so only names from this set are
// ever accepted.
var allowedTables = map[string]struct{}{
	"students":              {},
	"admins":                {},
	"schools":               {},
	"academic_records":      {},
	"documents":             {},
	"transfer_certificates": {},
	"schemes":               {},
	"scheme_history":        {},
}

// DiagnosticRepository exposes read-only introspection over the allowlisted
// application tables.
type DiagnosticRepository struct {
	db *pgxpool.Pool
}

// NewDiagnosticRepository creates a new DiagnosticRepository
func NewDiagnosticRepository(db *pgxpool.Pool) *DiagnosticRepository {
	return &DiagnosticRepository{db: db}
}

// IsAllowedTable reports whether name is in the diagnostic allowlist.
func IsAllowedTable(name string) bool {
	_, ok := allowedTables[name]
	return ok
}

// ListTables returns the allowlisted tables that actually exist in the
// database, sorted by name.
func (r *DiagnosticRepository) ListTables(ctx context.Context) ([]string, error) {
	const query = `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list tables query")
		return nil, fmt.Errorf("error querying tables: %w", err)
	}
	defer rows.Close()

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			logger.Error().Err(err).Msg("Error scanning table name")
			return nil, fmt.Errorf("error scanning table name: %w", err)
		}
		if IsAllowedTable(name) {
			tables = append(tables, name)
		}
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating table rows")
		return nil, fmt.Errorf("error iterating table rows: %w", err)
	}

	return tables, nil
}

// GetTableRows returns every row of an allowlisted table as generic maps
// keyed by column name.
func (r *DiagnosticRepository) GetTableRows(ctx context.Context, name string) ([]map[string]interface{}, error) {
	if !IsAllowedTable(name) {
		return nil, ErrUnknownTable
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf("SELECT * FROM %s", name))
	if err != nil {
		if dberrors.IsUndefinedTable(err) {
			return nil, ErrUnknownTable
		}
		logger.Error().Err(err).Str("table", name).Msg("Error executing table dump query")
		return nil, fmt.Errorf("error querying table %s: %w", name, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	result := []map[string]interface{}{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			logger.Error().Err(err).Str("table", name).Msg("Error reading table row values")
			return nil, fmt.Errorf("error reading row values: %w", err)
		}
		row := make(map[string]interface{}, len(fields))
		for i, fd := range fields {
			row[string(fd.Name)] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", name).Msg("Error iterating table rows")
		return nil, fmt.Errorf("error iterating table rows: %w", err)
	}

	return result, nil
}
