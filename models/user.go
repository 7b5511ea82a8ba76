package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries;
// use [User.Public] for anything that leaves the server.
type User struct {
	// ID is a time-ordered UUID assigned on registration.
	ID string `json:"id"`

	// Email is the unique, lowercased login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the password. Never plaintext.
	PasswordHash string `json:"passwordHash"`

	// Name is the display name of the user.
	Name string `json:"name"`

	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the view of the user that is safe to send to clients.
func (u User) Public() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// UserResponse is the public projection of [User] without credentials.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
