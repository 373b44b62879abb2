package service

import (
	"fmt"

	"fitlog-be/internal/models"
	"fitlog-be/internal/repository"
)

// UserService defines the interface for user directory business logic
type UserService interface {
	CreateUser(req *models.CreateUserRequest) (*models.UserResponse, error)
	ListUsers() ([]*models.UserResponse, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateUser persists a new user. An empty username is a validation error.
func (s *userService) CreateUser(req *models.CreateUserRequest) (*models.UserResponse, error) {
	if req.Username == "" {
		return nil, newValidationError("username", "username is required")
	}

	user, err := s.repo.Create(req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// ListUsers returns all users in store order.
func (s *userService) ListUsers() ([]*models.UserResponse, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, &models.UserResponse{
			ID:       user.ID,
			Username: user.Username,
		})
	}

	return responses, nil
}
