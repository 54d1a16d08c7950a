package models

import "time"

// Follow is a directed edge: FollowerID follows FolloweeID. Self-edges are
// rejected at the service layer before this ever reaches the store.
type Follow struct {
	FollowerID string    `gorm:"primaryKey" json:"follower_id"`
	FolloweeID string    `gorm:"primaryKey" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
