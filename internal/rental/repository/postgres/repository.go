package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Olelouer/backend-chatop/internal/rental/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var rentalColumns = []string{
	"id", "name", "surface", "price", "picture", "description",
	"owner_id", "created_at", "updated_at",
}

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

func (r *PostgresRepository) GetAll(ctx context.Context) ([]domain.Rental, error) {
	query, args, err := psql.Select(rentalColumns...).
		From("rentals").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build rentals query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err := scanRental(rows, &rental); err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}

	return rentals, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	query, args, err := psql.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build rental query: %w", err)
	}

	var rental domain.Rental
	if err := scanRental(r.db.QueryRow(ctx, query, args...), &rental); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rental by id: %w", err)
	}

	return &rental, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query, args, err := psql.Insert("rentals").
		Columns(rentalColumns...).
		Values(rental.ID, rental.Name, rental.Surface, rental.Price, rental.Picture,
			rental.Description, rental.OwnerID, rental.CreatedAt, rental.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build rental insert: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)

	return err
}

func (r *PostgresRepository) Update(ctx context.Context, rental *domain.Rental) error {
	query, args, err := psql.Update("rentals").
		Set("name", rental.Name).
		Set("surface", rental.Surface).
		Set("price", rental.Price).
		Set("picture", rental.Picture).
		Set("description", rental.Description).
		Set("updated_at", rental.UpdatedAt).
		Where(squirrel.Eq{"id": rental.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build rental update: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)

	return err
}

func scanRental(row pgx.Row, rental *domain.Rental) error {
	return row.Scan(&rental.ID, &rental.Name, &rental.Surface, &rental.Price,
		&rental.Picture, &rental.Description, &rental.OwnerID,
		&rental.CreatedAt, &rental.UpdatedAt)
}
