package dto

import (
	autherror "github.com/Olelouer/backend-chatop/internal/errors"
)

type MessageInput struct {
	RentalID string `json:"rental_id"`
	UserID   string `json:"user_id"`
	Message  string `json:"message"`
}

func (in MessageInput) Validate() error {
	if in.RentalID == "" || in.UserID == "" || in.Message == "" {
		return autherror.ErrInvalidInput
	}
	return nil
}
