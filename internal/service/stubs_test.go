package service

import (
	"context"

	"chirp/internal/models"
)

// Function-field stubs so each test overrides only the calls it cares about.

type postRepoStub struct {
	CreateFn           func(ctx context.Context, post *models.Post, tags []string) error
	GetByIDFn          func(ctx context.Context, id uint, viewerID string) (*models.Post, error)
	ListFn             func(ctx context.Context, viewerID string) ([]*models.Post, error)
	ListByAuthorFn     func(ctx context.Context, authorID, viewerID string) ([]*models.Post, error)
	ListFollowedFn     func(ctx context.Context, viewerID string) ([]*models.Post, error)
	ListBookmarkedFn   func(ctx context.Context, viewerID string) ([]*models.Post, error)
	SearchByHashtagsFn func(ctx context.Context, tags []string, viewerID string) ([]*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post, tags []string) error {
	return s.CreateFn(ctx, post, tags)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint, viewerID string) (*models.Post, error) {
	return s.GetByIDFn(ctx, id, viewerID)
}

func (s *postRepoStub) List(ctx context.Context, viewerID string) ([]*models.Post, error) {
	return s.ListFn(ctx, viewerID)
}

func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID, viewerID string) ([]*models.Post, error) {
	return s.ListByAuthorFn(ctx, authorID, viewerID)
}

func (s *postRepoStub) ListFollowed(ctx context.Context, viewerID string) ([]*models.Post, error) {
	return s.ListFollowedFn(ctx, viewerID)
}

func (s *postRepoStub) ListBookmarked(ctx context.Context, viewerID string) ([]*models.Post, error) {
	return s.ListBookmarkedFn(ctx, viewerID)
}

func (s *postRepoStub) SearchByHashtags(ctx context.Context, tags []string, viewerID string) ([]*models.Post, error) {
	return s.SearchByHashtagsFn(ctx, tags, viewerID)
}

type commentRepoStub struct {
	CreateFn     func(ctx context.Context, comment *models.Comment) error
	ListByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.CreateFn(ctx, comment)
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.ListByPostFn(ctx, postID)
}

type engagementRepoStub struct {
	SetHeartFn     func(ctx context.Context, postID uint, userID string, add bool) (bool, error)
	SetBookmarkFn  func(ctx context.Context, postID uint, userID string, add bool) (bool, error)
	IsHeartedFn    func(ctx context.Context, postID uint, userID string) (bool, error)
	IsBookmarkedFn func(ctx context.Context, postID uint, userID string) (bool, error)
}

func (s *engagementRepoStub) SetHeart(ctx context.Context, postID uint, userID string, add bool) (bool, error) {
	return s.SetHeartFn(ctx, postID, userID, add)
}

func (s *engagementRepoStub) SetBookmark(ctx context.Context, postID uint, userID string, add bool) (bool, error) {
	return s.SetBookmarkFn(ctx, postID, userID, add)
}

func (s *engagementRepoStub) IsHearted(ctx context.Context, postID uint, userID string) (bool, error) {
	return s.IsHeartedFn(ctx, postID, userID)
}

func (s *engagementRepoStub) IsBookmarked(ctx context.Context, postID uint, userID string) (bool, error) {
	return s.IsBookmarkedFn(ctx, postID, userID)
}

type followRepoStub struct {
	CreateFn         func(ctx context.Context, followerID, followeeID string) error
	DeleteFn         func(ctx context.Context, followerID, followeeID string) error
	ExistsFn         func(ctx context.Context, followerID, followeeID string) (bool, error)
	ListFollowableFn func(ctx context.Context, excludeID string) ([]models.FollowableUser, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followeeID string) error {
	return s.CreateFn(ctx, followerID, followeeID)
}

func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID string) error {
	return s.DeleteFn(ctx, followerID, followeeID)
}

func (s *followRepoStub) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.ExistsFn(ctx, followerID, followeeID)
}

func (s *followRepoStub) ListFollowable(ctx context.Context, excludeID string) ([]models.FollowableUser, error) {
	return s.ListFollowableFn(ctx, excludeID)
}

type userRepoStub struct {
	GetByIDFn func(ctx context.Context, id string) (*models.User, error)
	ListFn    func(ctx context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.GetByIDFn(ctx, id)
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.ListFn(ctx)
}
