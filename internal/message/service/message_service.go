package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	authdomain "github.com/Olelouer/backend-chatop/internal/auth/domain"
	autherror "github.com/Olelouer/backend-chatop/internal/errors"
	"github.com/Olelouer/backend-chatop/internal/message/domain"
	"github.com/Olelouer/backend-chatop/internal/message/dto"
	rentaldomain "github.com/Olelouer/backend-chatop/internal/rental/domain"
)

type MessageService struct {
	messages domain.MessageRepository
	rentals  rentaldomain.RentalRepository
	users    authdomain.UserRepository
}

func NewMessageService(messages domain.MessageRepository, rentals rentaldomain.RentalRepository, users authdomain.UserRepository) *MessageService {
	return &MessageService{
		messages: messages,
		rentals:  rentals,
		users:    users,
	}
}

// Create links a user to a rental through a message. Both ends of the link
// must exist.
func (s *MessageService) Create(ctx context.Context, input dto.MessageInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	rental, err := s.rentals.GetByID(ctx, input.RentalID)
	if err != nil {
		return err
	}
	if rental == nil {
		return autherror.ErrEntityNotFound
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrEntityNotFound
	}

	now := time.Now()

	message := &domain.Message{
		ID:        uuid.NewString(),
		RentalID:  input.RentalID,
		UserID:    input.UserID,
		Message:   input.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.messages.Create(ctx, message)
}
