package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmps/schooladmin/internal/app/models"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindByCredentials looks up an admin by exact username/password equality.
func (r *AdminRepository) FindByCredentials(ctx context.Context, username, password string) (*models.Admin, error) {
	sql, args, err := r.sb.Select("admin_id", "name", "username").
		From("admins").
		Where(squirrel.Eq{"username": username, "password": password}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin credentials query: %w", err)
	}

	admin := &models.Admin{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.AdminID, &admin.Name, &admin.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error querying admin credentials")
		return nil, fmt.Errorf("error checking admin credentials: %w", err)
	}

	return admin, nil
}
