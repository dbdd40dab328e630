package dto

import (
	"net/mail"

	autherror "github.com/Olelouer/backend-chatop/internal/errors"
)

const minPasswordLength = 8

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (in RegisterInput) Validate() error {
	if in.Email == "" || in.Name == "" || in.Password == "" {
		return autherror.ErrInvalidInput
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return autherror.ErrInvalidInput
	}
	if len(in.Password) < minPasswordLength {
		return autherror.ErrInvalidInput
	}
	return nil
}
