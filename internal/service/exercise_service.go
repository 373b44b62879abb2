package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitlog-be/internal/cache"
	"fitlog-be/internal/models"
	"fitlog-be/internal/repository"
)

// usernameCacheTTL bounds cache growth; usernames themselves never change.
const usernameCacheTTL = 1 * time.Hour

// ExerciseService defines the interface for exercise log business logic
type ExerciseService interface {
	AddExercise(req *models.AddExerciseRequest) (*models.AddExerciseResponse, error)
	GetLog(userID, from, to string, limit int) (*models.LogResponse, error)
}

type exerciseService struct {
	repo     repository.ExerciseRepository
	userRepo repository.UserRepository
	cache    cache.Cache
	ctx      context.Context
	now      func() time.Time
}

// NewExerciseService creates a new exercise service. cacheClient may be nil,
// in which case every username lookup goes to the database.
func NewExerciseService(repo repository.ExerciseRepository, userRepo repository.UserRepository, cacheClient cache.Cache) ExerciseService {
	return &exerciseService{
		repo:     repo,
		userRepo: userRepo,
		cache:    cacheClient,
		ctx:      context.Background(),
		now:      time.Now,
	}
}

// AddExercise validates and persists a single exercise entry. The date
// defaults to the current time when absent or empty. The user reference is
// deliberately not verified; a missing user surfaces as an empty username
// in the response.
func (s *exerciseService) AddExercise(req *models.AddExerciseRequest) (*models.AddExerciseResponse, error) {
	if req.UserID == "" {
		return nil, newValidationError("userId", "userId is required")
	}
	if req.Description == "" {
		return nil, newValidationError("description", "description is required")
	}
	if req.Duration == nil {
		return nil, newValidationError("duration", "duration is required")
	}

	date := s.now()
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return nil, newValidationError("date", "date must be a valid date")
		}
		date = parsed
	}

	exercise, err := s.repo.Create(req.UserID, req.Description, *req.Duration, date)
	if err != nil {
		return nil, fmt.Errorf("failed to add exercise: %w", err)
	}

	username, err := s.lookupUsername(req.UserID)
	if err != nil {
		return nil, err
	}

	return &models.AddExerciseResponse{
		ID:          req.UserID,
		Username:    username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        formatDate(exercise.Date),
	}, nil
}

// GetLog builds a bounded, filtered query over a user's exercises and
// shapes the result envelope. Date bounds are exclusive on both ends: an
// entry dated exactly from or to is excluded. A limit of 0 means no limit.
// Unparseable from/to values are silently dropped, both from the filter
// and from the echoed envelope fields.
func (s *exerciseService) GetLog(userID, from, to string, limit int) (*models.LogResponse, error) {
	var lower, upper *time.Time
	var fromEcho, toEcho *string

	if from != "" {
		if t, err := parseDate(from); err == nil {
			lower = &t
			echo := formatDate(t)
			fromEcho = &echo
		}
	}
	if to != "" {
		if t, err := parseDate(to); err == nil {
			upper = &t
			echo := formatDate(t)
			toEcho = &echo
		}
	}
	if limit < 0 {
		limit = 0
	}

	exercises, err := s.repo.FindByUser(userID, lower, upper, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query log: %w", err)
	}

	log := make([]models.LogEntry, 0, len(exercises))
	for _, exercise := range exercises {
		log = append(log, models.LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        formatDate(exercise.Date),
		})
	}

	username, err := s.lookupUsername(userID)
	if err != nil {
		return nil, err
	}

	return &models.LogResponse{
		ID:       userID,
		Username: username,
		From:     fromEcho,
		To:       toEcho,
		Limit:    limit,
		Count:    len(log),
		Log:      log,
	}, nil
}

// lookupUsername resolves a user id to a username, reading through the
// cache when one is configured. A missing user degrades to an empty
// username rather than an error.
func (s *exerciseService) lookupUsername(userID string) (string, error) {
	cacheKey := fmt.Sprintf("user:name:%s", userID)

	if s.cache != nil {
		if name, err := s.cache.Get(s.ctx, cacheKey); err == nil {
			return name, nil
		}
	}

	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(s.ctx, cacheKey, user.Username, usernameCacheTTL)
	}

	return user.Username, nil
}
