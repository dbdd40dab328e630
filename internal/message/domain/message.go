package domain

import "time"

type Message struct {
	ID        string
	RentalID  string
	UserID    string
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
