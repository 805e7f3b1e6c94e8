package model

import "time"

// User is an admin account. Any signed-in user may manage site content.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session binds a browser client to a signed-in user until ExpiresAt.
type Session struct {
	ClientID  string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}
