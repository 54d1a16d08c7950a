package repository

import (
	"context"
	"errors"

	"chirp/internal/models"
	"chirp/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Every list
// method returns posts newest first (id DESC) with the author preloaded and
// the viewer-relative heart/bookmark flags resolved in the same query.
type PostRepository interface {
	// Create inserts the post and its hashtag index rows as one
	// transaction: nothing is observable unless all of it commits.
	Create(ctx context.Context, post *models.Post, tags []string) error
	GetByID(ctx context.Context, id uint, viewerID string) (*models.Post, error)
	List(ctx context.Context, viewerID string) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID, viewerID string) ([]*models.Post, error)
	ListFollowed(ctx context.Context, viewerID string) ([]*models.Post, error)
	ListBookmarked(ctx context.Context, viewerID string) ([]*models.Post, error)
	SearchByHashtags(ctx context.Context, tags []string, viewerID string) ([]*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, tag := range tags {
			hashtagID, err := upsertHashtag(tx, tag)
			if err != nil {
				return err
			}
			if err := linkPostHashtag(tx, post.ID, hashtagID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	// Counted here, after commit, so rolled-back link rows never inflate it.
	observability.HashtagsIndexed.Add(float64(len(tags)))
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID string) (*models.Post, error) {
	var post models.Post
	err := r.withViewerState(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Preload("Comments", commentOrder).
		Preload("Comments.Author").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, viewerID string) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.withViewerState(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Preload("Comments", commentOrder).
		Preload("Comments.Author").
		Order("posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID, viewerID string) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.withViewerState(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Preload("Comments", commentOrder).
		Preload("Comments.Author").
		Where("posts.user_id = ?", authorID).
		Order("posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListFollowed returns the posts of every user the viewer follows, newest
// first. One IN-subquery instead of a query per followed user.
func (r *postRepository) ListFollowed(ctx context.Context, viewerID string) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.withViewerState(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Where("posts.user_id IN (?)",
			r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", viewerID)).
		Order("posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListBookmarked(ctx context.Context, viewerID string) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.withViewerState(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Preload("Comments", commentOrder).
		Preload("Comments.Author").
		Where("posts.id IN (?)",
			r.db.Model(&models.Bookmark{}).Select("post_id").Where("user_id = ?", viewerID)).
		Order("posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// SearchByHashtags returns posts tagged with any of the supplied tags,
// deduplicated by post, newest first. Tags are matched exactly as stored.
func (r *postRepository) SearchByHashtags(ctx context.Context, tags []string, viewerID string) ([]*models.Post, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	defer observability.TrackQuery("search_by_hashtags", "posts")()
	tagged := r.db.Model(&models.PostHashtag{}).
		Select("post_hashtags.post_id").
		Joins("JOIN hashtags ON hashtags.id = post_hashtags.hashtag_id").
		Where("hashtags.tag IN ?", tags)
	posts := []*models.Post{}
	err := r.withViewerState(r.db.WithContext(ctx), viewerID).
		Preload("Author").
		Preload("Comments", commentOrder).
		Preload("Comments.Author").
		Where("posts.id IN (?)", tagged).
		Order("posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// withViewerState resolves is_hearted/is_bookmarked for the viewer as EXISTS
// subqueries in the main select, so list views cost one query instead of two
// per post. With no viewer the computed flags stay at their zero value.
func (r *postRepository) withViewerState(db *gorm.DB, viewerID string) *gorm.DB {
	if viewerID == "" {
		return db
	}
	return db.Select("posts.*, "+
		"EXISTS(SELECT 1 FROM hearts WHERE hearts.post_id = posts.id AND hearts.user_id = ?) AS is_hearted, "+
		"EXISTS(SELECT 1 FROM bookmarks WHERE bookmarks.post_id = posts.id AND bookmarks.user_id = ?) AS is_bookmarked",
		viewerID, viewerID)
}

// commentOrder keeps expanded comment lists in insertion order.
func commentOrder(db *gorm.DB) *gorm.DB {
	return db.Order("comments.created_at ASC, comments.id ASC")
}
