package service

import (
	"context"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// FeedService assembles the viewer-specific feed views. All feeds are
// unpaginated and ordered by post id descending, which is creation order
// because ids are assigned monotonically.
type FeedService struct {
	postRepo repository.PostRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository) *FeedService {
	return &FeedService{postRepo: postRepo}
}

// HomeFeed returns the posts of every user the viewer follows, newest
// first, in compact form (no comment lists).
func (s *FeedService) HomeFeed(ctx context.Context, viewerID string) ([]*models.Post, error) {
	return s.postRepo.ListFollowed(ctx, viewerID)
}

// ProfileFeed returns subjectID's posts newest first, annotated with the
// viewer's heart/bookmark state.
func (s *FeedService) ProfileFeed(ctx context.Context, viewerID, subjectID string) ([]*models.Post, error) {
	return s.postRepo.ListByAuthor(ctx, subjectID, viewerID)
}

// BookmarkFeed returns the posts the viewer has bookmarked, newest first.
// The bookmark table's per-pair uniqueness makes duplicates impossible.
func (s *FeedService) BookmarkFeed(ctx context.Context, viewerID string) ([]*models.Post, error) {
	return s.postRepo.ListBookmarked(ctx, viewerID)
}
