package repository

import (
	"errors"
	"strings"

	"chirp/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExtractTags returns the distinct hashtag tokens in text: whitespace-split
// words that start with '#', kept verbatim (case-sensitive, '#' included).
// Callers must not rely on the order of the result.
func ExtractTags(text string) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, word := range strings.Fields(text) {
		if !strings.HasPrefix(word, "#") {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		tags = append(tags, word)
	}
	return tags
}

// getOrCreate fetches the row matching the non-zero fields of record,
// inserting it when absent. The insert carries ON CONFLICT DO NOTHING so a
// concurrent writer winning the race never raises an error; Postgres aborts
// the whole enclosing transaction on any failed statement, so the conflict
// must be absorbed in the statement itself, not caught afterwards. A lost
// race leaves zero rows affected and is resolved with a second lookup, so
// both writers converge on the winner's row.
func getOrCreate[M any](tx *gorm.DB, record *M) error {
	err := tx.Where(record).First(record).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return tx.Where(record).First(record).Error
}

// upsertHashtag resolves tag to its vocabulary row id, creating the row on
// first use. Safe under arbitrary concurrency via getOrCreate.
func upsertHashtag(tx *gorm.DB, tag string) (uint, error) {
	hashtag := models.Hashtag{Tag: tag}
	if err := getOrCreate(tx, &hashtag); err != nil {
		return 0, err
	}
	return hashtag.ID, nil
}

// linkPostHashtag inserts the post↔hashtag association. A repeated link for
// the same pair is a no-op rather than an error.
func linkPostHashtag(tx *gorm.DB, postID, hashtagID uint) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostHashtag{PostID: postID, HashtagID: hashtagID}).Error
}
