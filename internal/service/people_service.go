package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// PeopleService provides follow-graph business logic.
type PeopleService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewPeopleService returns a new PeopleService.
func NewPeopleService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *PeopleService {
	return &PeopleService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow makes followerID follow followeeID. Following yourself is rejected;
// following someone you already follow is a successful no-op.
func (s *PeopleService) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return models.NewSelfFollowError()
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	return s.followRepo.Create(ctx, followerID, followeeID)
}

// Unfollow removes the edge. Unfollowing someone you don't follow is a
// successful no-op.
func (s *PeopleService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return s.followRepo.Delete(ctx, followerID, followeeID)
}

// IsFollowing reports whether followerID follows followeeID.
func (s *PeopleService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followeeID)
}

// ListFollowableUsers returns everyone except the caller, annotated with
// follow-state and last activity.
func (s *PeopleService) ListFollowableUsers(ctx context.Context, callerID string) ([]models.FollowableUser, error) {
	return s.followRepo.ListFollowable(ctx, callerID)
}
