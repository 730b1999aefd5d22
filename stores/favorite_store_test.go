package stores_test

import (
	"testing"
	"time"

	"github.com/pin-diary/api-go/models"
	"github.com/pin-diary/api-go/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteStore_Toggle(t *testing.T) {
	db := setupTestDB(t)
	store := stores.NewFavoriteStore(db)

	post := seedPost(t, db, 1, "toggle me", "addr", time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC))

	favorited, err := store.Toggle(post.ID, 1)
	require.NoError(t, err)
	assert.True(t, favorited)

	exists, err := store.Exists(post.ID, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	favorited, err = store.Toggle(post.ID, 1)
	require.NoError(t, err)
	assert.False(t, favorited)

	exists, err = store.Exists(post.ID, 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteStore_ExistsIsPerUser(t *testing.T) {
	db := setupTestDB(t)
	store := stores.NewFavoriteStore(db)

	post := seedPost(t, db, 1, "mine", "addr", time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&models.Favorite{PostID: post.ID, UserID: 2}).Error)

	exists, err := store.Exists(post.ID, 1)
	require.NoError(t, err)
	assert.False(t, exists, "another user's favorite must not count for the requester")
}

func TestFavoriteStore_PostIDsForUser(t *testing.T) {
	db := setupTestDB(t)
	store := stores.NewFavoriteStore(db)

	first := seedPost(t, db, 1, "first", "addr", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	second := seedPost(t, db, 1, "second", "addr", time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, db.Create(&models.Favorite{PostID: first.ID, UserID: 1, CreatedAt: time.Now().Add(-time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Favorite{PostID: second.ID, UserID: 1, CreatedAt: time.Now()}).Error)

	ids, err := store.PostIDsForUser(1, 1, 10)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, second.ID, ids[0], "newest favorite first")
	assert.Equal(t, first.ID, ids[1])
}
