package models

import "time"

// Post represents a post in the Chirp application. The auto-incremented ID
// doubles as the feed sort key: higher ID means newer post, so every feed
// orders by id DESC.
//
// HeartsCount and CommentsCount are denormalized columns kept equal to the
// cardinality of the hearts and comments tables by the engagement
// repository; they are never written anywhere else.
type Post struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        string `gorm:"not null;index" json:"user_id"`
	Author        User   `gorm:"foreignKey:UserID" json:"author"`
	Content       string `gorm:"type:text;not null" json:"content"`
	HeartsCount   int    `gorm:"not null;default:0" json:"hearts_count"`
	CommentsCount int    `gorm:"not null;default:0" json:"comments_count"`
	// IsHearted and IsBookmarked are viewer-relative; computed at query time
	IsHearted    bool `gorm:"->;-:migration" json:"is_hearted"`
	IsBookmarked bool `gorm:"->;-:migration" json:"is_bookmarked"`
	// Comments is populated for expanded views only, ordered oldest first
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
