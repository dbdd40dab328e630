package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Olelouer/backend-chatop/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	// GetByEmail returns nil, nil when no user carries the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByID returns nil, nil when the id is unknown.
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}
