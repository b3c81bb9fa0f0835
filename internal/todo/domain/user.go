package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // lowercased before it reaches the store
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
