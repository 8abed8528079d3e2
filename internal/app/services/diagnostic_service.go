package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmps/schooladmin/internal/app/repositories"
	"github.com/gmps/schooladmin/internal/pkg/apperrors"
)

type diagnosticStore interface {
	ListTables(ctx context.Context) ([]string, error)
	GetTableRows(ctx context.Context, name string) ([]map[string]interface{}, error)
}

// DiagnosticService exposes the read-only table introspection routes.
type DiagnosticService interface {
	ListTables(ctx context.Context) ([]string, error)
	DumpTable(ctx context.Context, name string) ([]map[string]interface{}, error)
}

type diagnosticService struct {
	store diagnosticStore
}

// NewDiagnosticService creates a new diagnostic service instance
func NewDiagnosticService(store diagnosticStore) DiagnosticService {
	return &diagnosticService{store: store}
}

func (s *diagnosticService) ListTables(ctx context.Context) ([]string, error) {
	tables, err := s.store.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tables: %w", err)
	}
	return tables, nil
}

func (s *diagnosticService) DumpTable(ctx context.Context, name string) ([]map[string]interface{}, error) {
	rows, err := s.store.GetTableRows(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrUnknownTable) {
			return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "Invalid table name")
		}
		return nil, fmt.Errorf("error dumping table: %w", err)
	}
	return rows, nil
}
