package domain

//go:generate mockgen -destination=../../mocks/mock_message_repository.go -package=mocks github.com/Olelouer/backend-chatop/internal/message/domain MessageRepository

import "context"

type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
}
