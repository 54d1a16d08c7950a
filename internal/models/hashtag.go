package models

// Hashtag is one entry in the global hashtag vocabulary. Tag carries the
// leading '#' exactly as typed by the author; matching is case-sensitive.
// Rows are created lazily on first use and never deleted.
type Hashtag struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Tag string `gorm:"uniqueIndex;not null" json:"tag"`
}

// PostHashtag associates a post with a hashtag. The composite primary key
// makes a repeated link attempt a uniqueness conflict, which callers absorb.
type PostHashtag struct {
	PostID    uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	HashtagID uint `gorm:"primaryKey;autoIncrement:false" json:"hashtag_id"`
}
