package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Olelouer/backend-chatop/internal/message/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// DB is the subset of pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, message *domain.Message) error {
	query, args, err := psql.Insert("messages").
		Columns("id", "rental_id", "user_id", "message", "created_at", "updated_at").
		Values(message.ID, message.RentalID, message.UserID, message.Message,
			message.CreatedAt, message.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build message insert: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)

	return err
}
