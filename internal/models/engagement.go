package models

import "time"

// Heart records that a user hearted a post. The composite primary key keeps
// the pair unique; hearts_count on the post is derived from rows here.
type Heart struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Bookmark records that a user bookmarked a post. Unlike hearts, bookmarks
// have no denormalized counter on the post.
type Bookmark struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
