// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a user in the Chirp application. The identifier is an
// opaque string assigned by the identity provider; this service never
// generates or mutates it.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// FollowableUser is a user as shown on the people page: everyone except the
// caller, annotated with whether the caller already follows them and when
// they last posted. LastActive is nil when the user has never posted.
type FollowableUser struct {
	User       User       `gorm:"embedded" json:"user"`
	IsFollowed bool       `json:"is_followed"`
	LastActive *time.Time `json:"last_active"`
}
