package domain

import "time"

type Rental struct {
	ID          string
	Name        string
	Surface     int
	Price       int
	Picture     string
	Description string
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
