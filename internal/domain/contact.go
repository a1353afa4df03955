package domain

import "time"

// ContactMessage is a single contact-form submission. Messages are
// insert-only; nothing in the system ever mutates one after creation.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
