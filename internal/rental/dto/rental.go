package dto

import (
	"time"

	autherror "github.com/Olelouer/backend-chatop/internal/errors"
	"github.com/Olelouer/backend-chatop/internal/rental/domain"
)

type RentalInput struct {
	Name        string
	Surface     int
	Price       int
	Description string
}

func (in RentalInput) Validate() error {
	if in.Name == "" || in.Surface <= 0 || in.Price <= 0 {
		return autherror.ErrInvalidInput
	}
	return nil
}

// PictureFile is an uploaded picture lifted out of the multipart form.
type PictureFile struct {
	Filename string
	Content  []byte
}

type RentalOutput struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Surface     int       `json:"surface"`
	Price       int       `json:"price"`
	Picture     string    `json:"picture"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RentalListOutput struct {
	Rentals []RentalOutput `json:"rentals"`
}

func NewRentalOutput(r *domain.Rental) RentalOutput {
	return RentalOutput{
		ID:          r.ID,
		Name:        r.Name,
		Surface:     r.Surface,
		Price:       r.Price,
		Picture:     r.Picture,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
