package repository

import (
	"context"

	"chirp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository maintains the heart/bookmark membership tables and
// the denormalized hearts_count on posts. The counter is always refreshed
// from the live membership cardinality in a single aggregate UPDATE, never
// incremented from a previously read value, so it cannot drift under
// concurrent toggles.
type EngagementRepository interface {
	// SetHeart adds or removes the viewer's heart and refreshes
	// hearts_count. The returned bool reports whether the membership row
	// actually changed (false for double-add or remove-of-absent).
	SetHeart(ctx context.Context, postID uint, userID string, add bool) (bool, error)
	// SetBookmark adds or removes a bookmark; bookmarks carry no counter.
	SetBookmark(ctx context.Context, postID uint, userID string, add bool) (bool, error)
	IsHearted(ctx context.Context, postID uint, userID string) (bool, error)
	IsBookmarked(ctx context.Context, postID uint, userID string) (bool, error)
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) SetHeart(ctx context.Context, postID uint, userID string, add bool) (bool, error) {
	var res *gorm.DB
	if add {
		res = r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Heart{PostID: postID, UserID: userID})
	} else {
		res = r.db.WithContext(ctx).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.Heart{})
	}
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}

	// Refresh the counter regardless of whether the membership write
	// changed a row; it converges on the true cardinality either way.
	if err := r.db.WithContext(ctx).Exec(
		"UPDATE posts SET hearts_count = (SELECT COUNT(*) FROM hearts WHERE hearts.post_id = posts.id) WHERE posts.id = ?",
		postID,
	).Error; err != nil {
		return false, models.NewInternalError(err)
	}

	return res.RowsAffected > 0, nil
}

func (r *engagementRepository) SetBookmark(ctx context.Context, postID uint, userID string, add bool) (bool, error) {
	var res *gorm.DB
	if add {
		res = r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Bookmark{PostID: postID, UserID: userID})
	} else {
		res = r.db.WithContext(ctx).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.Bookmark{})
	}
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *engagementRepository) IsHearted(ctx context.Context, postID uint, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Heart{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *engagementRepository) IsBookmarked(ctx context.Context, postID uint, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Bookmark{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
