package domain

import "time"

// RoleUser is the role assigned to every self-registered account.
const RoleUser = "USER"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
