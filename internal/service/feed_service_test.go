package service

import (
	"context"
	"testing"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_RoutesToRepository(t *testing.T) {
	ctx := context.Background()
	posts := &postRepoStub{
		ListFollowedFn: func(_ context.Context, viewerID string) ([]*models.Post, error) {
			assert.Equal(t, "me", viewerID)
			return []*models.Post{{ID: 2}, {ID: 1}}, nil
		},
		ListBookmarkedFn: func(_ context.Context, viewerID string) ([]*models.Post, error) {
			assert.Equal(t, "me", viewerID)
			return []*models.Post{{ID: 3}}, nil
		},
		ListByAuthorFn: func(_ context.Context, authorID, viewerID string) ([]*models.Post, error) {
			assert.Equal(t, "subject", authorID)
			assert.Equal(t, "me", viewerID)
			return nil, nil
		},
	}
	svc := NewFeedService(posts)

	home, err := svc.HomeFeed(ctx, "me")
	require.NoError(t, err)
	assert.Len(t, home, 2)

	bookmarks, err := svc.BookmarkFeed(ctx, "me")
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)

	profile, err := svc.ProfileFeed(ctx, "me", "subject")
	require.NoError(t, err)
	assert.Empty(t, profile)
}
