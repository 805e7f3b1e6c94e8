package model

import "time"

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput carries the fields submitted by the public contact form.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactListOptions carries filter and pagination parameters for listing contact messages.
type ContactListOptions struct {
	// Status filters by read state: "", "all", "unread", "read".
	// Empty string and "all" return all messages.
	Status string
	Limit  int
}
