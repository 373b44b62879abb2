package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fitlog-be/internal/entities"
)

// ExerciseRepository defines the interface for exercise database operations
type ExerciseRepository interface {
	Create(userID, description string, duration float64, date time.Time) (*entities.Exercise, error)
	FindByUser(userID string, from, to *time.Time, limit int) ([]*entities.Exercise, error)
}

type exerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository creates a new exercise repository
func NewExerciseRepository(db *sql.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

// Create inserts a new exercise into the database. The user reference is not
// verified against the users table; a dangling reference is accepted.
func (r *exerciseRepository) Create(userID, description string, duration float64, date time.Time) (*entities.Exercise, error) {
	query := `
		INSERT INTO exercises (user_id, description, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, description, duration, date
	`

	var exercise entities.Exercise
	err := r.db.QueryRow(query, userID, description, duration, date.UTC()).Scan(
		&exercise.ID,
		&exercise.UserID,
		&exercise.Description,
		&exercise.Duration,
		&exercise.Date,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	return &exercise, nil
}

// FindByUser retrieves a user's exercises, optionally bounded by date.
// Both bounds are exclusive: an exercise dated exactly from or to is
// excluded. A limit of 0 means no limit.
func (r *exerciseRepository) FindByUser(userID string, from, to *time.Time, limit int) ([]*entities.Exercise, error) {
	query := `
		SELECT id, user_id, description, duration, date
		FROM exercises
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if from != nil {
		args = append(args, from.UTC())
		query += fmt.Sprintf(" AND date > $%d", len(args))
	}
	if to != nil {
		args = append(args, to.UTC())
		query += fmt.Sprintf(" AND date < $%d", len(args))
	}

	query += " ORDER BY date ASC"

	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*entities.Exercise
	for rows.Next() {
		var exercise entities.Exercise
		err := rows.Scan(
			&exercise.ID,
			&exercise.UserID,
			&exercise.Description,
			&exercise.Duration,
			&exercise.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, &exercise)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return exercises, nil
}
