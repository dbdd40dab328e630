package dto

import (
	autherror "github.com/Olelouer/backend-chatop/internal/errors"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	if in.Email == "" || in.Password == "" {
		return autherror.ErrInvalidInput
	}
	return nil
}
