package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"chirp/internal/models"
	"chirp/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_CreateIdempotent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewFollowRepository(db)
	seedUsers(t, db, "a", "b")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "a", "b"))
	// Re-following must absorb the duplicate-key conflict.
	require.NoError(t, repo.Create(ctx, "a", "b"))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	ok, err := repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	// The edge is directed.
	ok, err = repo.Exists(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFollowRepository_Delete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewFollowRepository(db)
	seedUsers(t, db, "a", "b")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "a", "b"))
	require.NoError(t, repo.Delete(ctx, "a", "b"))

	ok, err := repo.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent edge is a no-op.
	require.NoError(t, repo.Delete(ctx, "a", "b"))
}

func TestFollowRepository_ListFollowable(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewFollowRepository(db)
	posts := NewPostRepository(db)
	seedUsers(t, db, "me", "followed", "quiet")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "me", "followed"))
	post := createPost(t, posts, "followed", "recent activity")

	users, err := repo.ListFollowable(ctx, "me")
	require.NoError(t, err)
	require.Len(t, users, 2, "caller must be excluded")

	byID := make(map[string]models.FollowableUser, len(users))
	for _, u := range users {
		byID[u.User.ID] = u
	}

	followed, ok := byID["followed"]
	require.True(t, ok)
	assert.True(t, followed.IsFollowed)
	require.NotNil(t, followed.LastActive)
	assert.WithinDuration(t, post.CreatedAt, *followed.LastActive, time.Second)

	quiet, ok := byID["quiet"]
	require.True(t, ok)
	assert.False(t, quiet.IsFollowed)
	assert.Nil(t, quiet.LastActive, "no posts means no last activity")
}

func TestFollowableRow_LastActiveFormats(t *testing.T) {
	want := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	cases := []struct {
		name string
		raw  string
	}{
		{"rfc3339", "2026-03-14T09:26:53Z"},
		{"sqlite text", "2026-03-14 09:26:53+00:00"},
		{"no zone", "2026-03-14 09:26:53"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := followableRow{LastActive: sql.NullString{String: tc.raw, Valid: true}}
			at, err := row.lastActive()
			require.NoError(t, err)
			require.NotNil(t, at)
			assert.True(t, at.Equal(want), "got %v", at)
		})
	}

	t.Run("null", func(t *testing.T) {
		at, err := followableRow{}.lastActive()
		require.NoError(t, err)
		assert.Nil(t, at)
	})

	t.Run("garbage", func(t *testing.T) {
		row := followableRow{LastActive: sql.NullString{String: "not a time", Valid: true}}
		_, err := row.lastActive()
		require.Error(t, err)
	})
}
