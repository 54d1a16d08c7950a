package service

import (
	"context"
	"strings"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/repository"
)

// PostService provides post creation, engagement, and lookup business logic.
type PostService struct {
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	engagementRepo repository.EngagementRepository
}

type CreatePostInput struct {
	AuthorID string
	Content  string
}

type CreateCommentInput struct {
	AuthorID string
	PostID   uint
	Content  string
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	engagementRepo repository.EngagementRepository,
) *PostService {
	return &PostService{
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		engagementRepo: engagementRepo,
	}
}

// CreatePost stores a new post together with its hashtag index entries as
// one atomic unit.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const maxContentLen = 10000

	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}

	post := &models.Post{
		UserID:  in.AuthorID,
		Content: in.Content,
	}
	tags := repository.ExtractTags(in.Content)
	if err := s.postRepo.Create(ctx, post, tags); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	return s.postRepo.GetByID(ctx, post.ID, in.AuthorID)
}

// GetPost returns the post with its author, the viewer's heart/bookmark
// state, and the full comment list. A missing post is a NOT_FOUND AppError,
// which the presentation layer renders as an absent result.
func (s *PostService) GetPost(ctx context.Context, id uint, viewerID string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, viewerID)
}

// ListPosts returns every post, newest first, in expanded form.
func (s *PostService) ListPosts(ctx context.Context, viewerID string) ([]*models.Post, error) {
	return s.postRepo.List(ctx, viewerID)
}

// SearchPostsByHashtags returns posts tagged with any of the tags in query.
// Tokens are normalized to carry a leading '#'; matching is exact and
// case-sensitive. A blank query yields an empty result, not an error.
func (s *PostService) SearchPostsByHashtags(ctx context.Context, query, viewerID string) ([]*models.Post, error) {
	tags := parseTagQuery(query)
	if len(tags) == 0 {
		return nil, nil
	}
	return s.postRepo.SearchByHashtags(ctx, tags, viewerID)
}

// CreateComment appends a comment to the post and bumps its comment count.
func (s *PostService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID, ""); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  in.PostID,
		UserID:  in.AuthorID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// HeartPost adds or removes the viewer's heart. The returned bool reports
// whether anything changed; repeated adds and removes are harmless.
func (s *PostService) HeartPost(ctx context.Context, postID uint, viewerID string, add bool) (bool, error) {
	changed, err := s.engagementRepo.SetHeart(ctx, postID, viewerID, add)
	if err != nil {
		return false, err
	}
	observability.EngagementToggles.WithLabelValues("heart").Inc()
	return changed, nil
}

// BookmarkPost adds or removes the viewer's bookmark.
func (s *PostService) BookmarkPost(ctx context.Context, postID uint, viewerID string, add bool) (bool, error) {
	changed, err := s.engagementRepo.SetBookmark(ctx, postID, viewerID, add)
	if err != nil {
		return false, err
	}
	observability.EngagementToggles.WithLabelValues("bookmark").Inc()
	return changed, nil
}

// parseTagQuery splits query on whitespace and forces each token to start
// with '#'. Empty tokens are dropped; duplicates are kept harmlessly since
// the search deduplicates by post.
func parseTagQuery(query string) []string {
	var tags []string
	for _, token := range strings.Fields(query) {
		if !strings.HasPrefix(token, "#") {
			token = "#" + token
		}
		tags = append(tags, token)
	}
	return tags
}
