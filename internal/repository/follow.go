package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chirp/internal/models"
	"chirp/internal/observability"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-edge operations.
type FollowRepository interface {
	// Create inserts the edge. Inserting an edge that already exists is
	// absorbed as a successful no-op.
	Create(ctx context.Context, followerID, followeeID string) error
	// Delete removes the edge if present; absence is not an error.
	Delete(ctx context.Context, followerID, followeeID string) error
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
	// ListFollowable returns every user except excludeID, annotated with
	// the excluded user's follow-state and each candidate's most recent
	// post time, in a single batched query.
	ListFollowable(ctx context.Context, excludeID string) ([]models.FollowableUser, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followeeID string) error {
	err := r.db.WithContext(ctx).
		Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID string) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// followableRow is the raw scan target for the people query. last_active is
// an aggregate expression with no declared column type, so SQLite hands it
// back as text; it is parsed into a time after the scan.
type followableRow struct {
	models.User `gorm:"embedded"`
	IsFollowed  bool
	LastActive  sql.NullString
}

// lastActiveLayouts covers the formats drivers render timestamps in when the
// destination is a string: RFC3339 via database/sql conversion, the SQLite
// text storage format, and a bare timestamp without zone.
var lastActiveLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

func (row followableRow) lastActive() (*time.Time, error) {
	if !row.LastActive.Valid || row.LastActive.String == "" {
		return nil, nil
	}
	for _, layout := range lastActiveLayouts {
		if t, err := time.Parse(layout, row.LastActive.String); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized last_active value %q", row.LastActive.String)
}

func (r *followRepository) ListFollowable(ctx context.Context, excludeID string) ([]models.FollowableUser, error) {
	defer observability.TrackQuery("list_followable", "users")()
	rows := []followableRow{}
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.*, "+
			"EXISTS(SELECT 1 FROM follows WHERE follows.follower_id = ? AND follows.followee_id = users.id) AS is_followed, "+
			"(SELECT MAX(posts.created_at) FROM posts WHERE posts.user_id = users.id) AS last_active",
			excludeID).
		Where("users.id != ?", excludeID).
		Order("users.id").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	users := make([]models.FollowableUser, 0, len(rows))
	for _, row := range rows {
		at, err := row.lastActive()
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		users = append(users, models.FollowableUser{
			User:       row.User,
			IsFollowed: row.IsFollowed,
			LastActive: at,
		})
	}
	return users, nil
}
