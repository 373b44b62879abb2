package models

// CreateUserRequest represents the request body for creating a user.
// The original API accepted both urlencoded forms and JSON, so both
// bindings are kept.
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
}

// UserResponse is the wire shape of a user. The _id key is part of the
// public API contract and is kept as-is.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}
