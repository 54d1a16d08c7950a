package repository

import (
	"context"
	"testing"

	"chirp/internal/models"
	"chirp/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewUserRepository(db)
	seedUsers(t, db, "u1")
	ctx := context.Background()

	user, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = repo.GetByID(ctx, "missing")
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_List(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewUserRepository(db)
	seedUsers(t, db, "b", "a", "c")

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "a", users[0].ID)
	assert.Equal(t, "b", users[1].ID)
	assert.Equal(t, "c", users[2].ID)
}
