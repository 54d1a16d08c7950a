package seed

import (
	"testing"

	"chirp/internal/models"
	"chirp/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	db := testutil.OpenTestDB(t)

	require.NoError(t, Seed(db, Options{NumUsers: 5, NumPosts: 20}))

	var userCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.EqualValues(t, 5, userCount)
	assert.EqualValues(t, 20, postCount)

	// Denormalized counters must match membership rows after seeding.
	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	for _, post := range posts {
		var hearts, comments int64
		require.NoError(t, db.Model(&models.Heart{}).Where("post_id = ?", post.ID).Count(&hearts).Error)
		require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments).Error)
		assert.EqualValues(t, hearts, post.HeartsCount, "post %d hearts", post.ID)
		assert.EqualValues(t, comments, post.CommentsCount, "post %d comments", post.ID)
	}

	// No self-follows in the generated graph.
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).Where("follower_id = followee_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)
}

func TestSeed_CleanRemovesExistingData(t *testing.T) {
	db := testutil.OpenTestDB(t)

	require.NoError(t, db.Create(&models.User{ID: "stale", FirstName: "Old", LastName: "User"}).Error)

	require.NoError(t, Seed(db, Options{NumUsers: 3, NumPosts: 5, ShouldClean: true}))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "stale").Count(&count).Error)
	assert.Zero(t, count)
}
