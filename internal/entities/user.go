package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID        string    `json:"id"` // UUID, assigned by the database
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
