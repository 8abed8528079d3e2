package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gmps/schooladmin/internal/app/repositories"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
)

type fakeDiagnostics struct {
	tables []string
	rows   map[string][]map[string]interface{}
}

func (f *fakeDiagnostics) ListTables(ctx context.Context) ([]string, error) {
	return f.tables, nil
}

func (f *fakeDiagnostics) GetTableRows(ctx context.Context, name string) ([]map[string]interface{}, error) {
	rows, ok := f.rows[name]
	if !ok {
		return nil, repositories.ErrUnknownTable
	}
	return rows, nil
}

func TestDumpTableUnknownNameIsBadRequest(t *testing.T) {
	svc := NewDiagnosticService(&fakeDiagnostics{rows: map[string][]map[string]interface{}{}})

	for _, name := range []string{"pg_shadow", "students; DROP TABLE students", ""} {
		_, err := svc.DumpTable(context.Background(), name)
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("DumpTable(%q) error = %v, want bad request", name, err)
		}
	}
}

func TestDumpTableReturnsRows(t *testing.T) {
	svc := NewDiagnosticService(&fakeDiagnostics{rows: map[string][]map[string]interface{}{
		"schools": {{"school_id": int64(1), "name": "GHS Pune"}},
	}})

	rows, err := svc.DumpTable(context.Background(), "schools")
	if err != nil {
		t.Fatalf("DumpTable: %v", err)
	}
	if len(rows) != 1 || rows[0]["name"] != "GHS Pune" {
		t.Errorf("rows = %v", rows)
	}
}

func TestListTables(t *testing.T) {
	svc := NewDiagnosticService(&fakeDiagnostics{tables: []string{"admins", "students"}})

	tables, err := svc.ListTables(context.Background())
	if err != nil {
		t.Fatalf("ListTables: %v", err)
	}
	if len(tables) != 2 || tables[0] != "admins" {
		t.Errorf("tables = %v", tables)
	}
}
