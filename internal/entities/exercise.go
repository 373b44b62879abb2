package entities

import "time"

// Exercise represents a single logged exercise entity in the database
type Exercise struct {
	ID          string    `json:"id"` // UUID, assigned by the database
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"` // opaque magnitude, units unspecified
	Date        time.Time `json:"date"`
}
