package repository

import (
	"context"
	"testing"

	"chirp/internal/models"
	"chirp/internal/observability"
	"chirp/internal/testutil"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUsers(t *testing.T, db *gorm.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, db.Create(&models.User{ID: id, FirstName: "Test", LastName: id}).Error)
	}
}

func createPost(t *testing.T, repo PostRepository, userID, content string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Content: content}
	require.NoError(t, repo.Create(context.Background(), post, ExtractTags(content)))
	return post
}

func TestPostRepository_CreateIndexesHashtags(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	seedUsers(t, db, "u1")

	post := createPost(t, repo, "u1", "shipping it #golang #backend #golang")

	var tags []models.Hashtag
	require.NoError(t, db.Order("tag").Find(&tags).Error)
	require.Len(t, tags, 2)
	assert.Equal(t, "#backend", tags[0].Tag)
	assert.Equal(t, "#golang", tags[1].Tag)

	var links int64
	require.NoError(t, db.Model(&models.PostHashtag{}).Where("post_id = ?", post.ID).Count(&links).Error)
	assert.EqualValues(t, 2, links)
}

func TestPostRepository_CreateCountsIndexedHashtags(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	seedUsers(t, db, "u1")

	before := promtest.ToFloat64(observability.HashtagsIndexed)
	createPost(t, repo, "u1", "counting #golang #backend")
	// One increment per association row written.
	assert.Equal(t, before+2, promtest.ToFloat64(observability.HashtagsIndexed))
}

func TestPostRepository_CreateReusesVocabulary(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	seedUsers(t, db, "u1", "u2")

	createPost(t, repo, "u1", "first #golang")
	createPost(t, repo, "u2", "second #golang")

	var count int64
	require.NoError(t, db.Model(&models.Hashtag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "same tag must map to one vocabulary row")
}

func TestPostRepository_GetByID(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	seedUsers(t, db, "u1")
	ctx := context.Background()

	post := createPost(t, repo, "u1", "hello world")

	got, err := repo.GetByID(ctx, post.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got.Content)
	assert.Equal(t, "u1", got.Author.ID)

	_, err = repo.GetByID(ctx, 999, "")
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	seedUsers(t, db, "u1")
	ctx := context.Background()

	first := createPost(t, repo, "u1", "first")
	second := createPost(t, repo, "u1", "second")
	third := createPost(t, repo, "u1", "third")

	posts, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, third.ID, posts[0].ID)
	assert.Equal(t, second.ID, posts[1].ID)
	assert.Equal(t, first.ID, posts[2].ID)
}

func TestPostRepository_ViewerState(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	engagement := NewEngagementRepository(db)
	seedUsers(t, db, "author", "viewer", "other")
	ctx := context.Background()

	post := createPost(t, repo, "author", "viewer flags")
	_, err := engagement.SetHeart(ctx, post.ID, "viewer", true)
	require.NoError(t, err)
	_, err = engagement.SetBookmark(ctx, post.ID, "other", true)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, post.ID, "viewer")
	require.NoError(t, err)
	assert.True(t, got.IsHearted)
	assert.False(t, got.IsBookmarked, "bookmark belongs to another viewer")

	// Without a viewer the flags stay false regardless of engagement.
	anon, err := repo.GetByID(ctx, post.ID, "")
	require.NoError(t, err)
	assert.False(t, anon.IsHearted)
	assert.False(t, anon.IsBookmarked)
}

func TestPostRepository_ListByAuthor(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	seedUsers(t, db, "u1", "u2")
	ctx := context.Background()

	createPost(t, repo, "u1", "mine")
	createPost(t, repo, "u2", "theirs")
	mine2 := createPost(t, repo, "u1", "mine again")

	posts, err := repo.ListByAuthor(ctx, "u1", "")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, mine2.ID, posts[0].ID)

	empty, err := repo.ListByAuthor(ctx, "nobody", "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostRepository_ListFollowed(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	follows := NewFollowRepository(db)
	seedUsers(t, db, "me", "followed", "stranger")
	ctx := context.Background()

	require.NoError(t, follows.Create(ctx, "me", "followed"))

	createPost(t, repo, "stranger", "not in feed")
	theirs := createPost(t, repo, "followed", "in feed")
	createPost(t, repo, "me", "own posts are not in the home feed")

	posts, err := repo.ListFollowed(ctx, "me")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, theirs.ID, posts[0].ID)
	assert.Equal(t, "followed", posts[0].Author.ID)
}

func TestPostRepository_ListBookmarked(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	engagement := NewEngagementRepository(db)
	seedUsers(t, db, "me", "author")
	ctx := context.Background()

	kept := createPost(t, repo, "author", "bookmark me")
	createPost(t, repo, "author", "skip me")

	_, err := engagement.SetBookmark(ctx, kept.ID, "me", true)
	require.NoError(t, err)

	posts, err := repo.ListBookmarked(ctx, "me")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, kept.ID, posts[0].ID)
	assert.True(t, posts[0].IsBookmarked)
}

func TestPostRepository_SearchByHashtags(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	seedUsers(t, db, "u1")
	ctx := context.Background()

	goPost := createPost(t, repo, "u1", "a #golang post")
	bothPost := createPost(t, repo, "u1", "a #golang and #coffee post")
	coffeePost := createPost(t, repo, "u1", "just #coffee here")
	createPost(t, repo, "u1", "no tags at all")

	t.Run("single tag", func(t *testing.T) {
		posts, err := repo.SearchByHashtags(ctx, []string{"#coffee"}, "")
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, coffeePost.ID, posts[0].ID)
		assert.Equal(t, bothPost.ID, posts[1].ID)
	})

	t.Run("any-of semantics deduplicate", func(t *testing.T) {
		posts, err := repo.SearchByHashtags(ctx, []string{"#golang", "#coffee"}, "")
		require.NoError(t, err)
		// bothPost matches twice but appears once
		require.Len(t, posts, 3)
		assert.Equal(t, coffeePost.ID, posts[0].ID)
		assert.Equal(t, bothPost.ID, posts[1].ID)
		assert.Equal(t, goPost.ID, posts[2].ID)
	})

	t.Run("unknown tag yields empty", func(t *testing.T) {
		posts, err := repo.SearchByHashtags(ctx, []string{"#nope"}, "")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("case sensitive", func(t *testing.T) {
		posts, err := repo.SearchByHashtags(ctx, []string{"#Golang"}, "")
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("no tags short-circuits", func(t *testing.T) {
		posts, err := repo.SearchByHashtags(ctx, nil, "")
		require.NoError(t, err)
		assert.Nil(t, posts)
	})
}
