package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "test error"}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"unique violation", pgError("23505"), IsUniqueViolation, true},
		{"wrapped unique violation", fmt.Errorf("insert failed: %w", pgError("23505")), IsUniqueViolation, true},
		{"undefined column", pgError("42703"), IsUndefinedColumn, true},
		{"undefined table", pgError("42P01"), IsUndefinedTable, true},
		{"other pg error", pgError("23503"), IsUniqueViolation, false},
		{"plain error", errors.New("boom"), IsUndefinedTable, false},
		{"nil", nil, IsUndefinedColumn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
