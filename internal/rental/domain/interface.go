package domain

//go:generate mockgen -destination=../../mocks/mock_rental_repository.go -package=mocks github.com/Olelouer/backend-chatop/internal/rental/domain RentalRepository

import "context"

type RentalRepository interface {
	GetAll(ctx context.Context) ([]Rental, error)
	// GetByID returns nil, nil when the id is unknown.
	GetByID(ctx context.Context, id string) (*Rental, error)
	Create(ctx context.Context, rental *Rental) error
	Update(ctx context.Context, rental *Rental) error
}
