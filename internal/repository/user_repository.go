package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fitlog-be/internal/entities"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(username string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	FindAll() ([]*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(username string) (*entities.User, error) {
	query := `
		INSERT INTO users (username)
		VALUES ($1)
		RETURNING id, username, created_at
	`

	var user entities.User
	err := r.db.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByID finds a user by ID. The incoming id is compared as text so that
// a malformed or dangling identifier reads as not-found rather than a
// driver-level type error.
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
		WHERE id::text = $1
	`

	var user entities.User
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindAll retrieves every user in store order
func (r *userRepository) FindAll() ([]*entities.User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(&user.ID, &user.Username, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
