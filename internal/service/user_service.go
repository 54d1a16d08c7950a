package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// UserService provides identity lookups. Users are created and managed by
// the identity provider; this service only reads them.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser resolves a user id to its user record.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, models.NewValidationError("User id is required")
	}
	return s.userRepo.GetByID(ctx, id)
}
