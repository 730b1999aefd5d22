package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pin-diary/api-go/models"
	"github.com/pin-diary/api-go/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostView_SortsImagesByID(t *testing.T) {
	post := models.Post{
		Title: "view",
		Color: models.MarkerColorYellow,
		Images: []models.Image{
			{ID: 3, URI: "c"},
			{ID: 1, URI: "a"},
			{ID: 2, URI: "b"},
		},
	}

	view := services.NewPostView(&post)
	require.Len(t, view.Images, 3)
	assert.Equal(t, "a", view.Images[0].URI)
	assert.Equal(t, "b", view.Images[1].URI)
	assert.Equal(t, "c", view.Images[2].URI)

	// The source slice is left untouched.
	assert.EqualValues(t, 3, post.Images[0].ID)
}

func TestPostView_JSONHasNoOwner(t *testing.T) {
	view := services.NewPostView(&models.Post{
		UserID: 7,
		Title:  "no owner in output",
		Color:  models.MarkerColorPurple,
	})

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "userId")
	assert.NotContains(t, fields, "user_id")
	assert.NotContains(t, fields, "user")
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "images")
}

func TestPostDetailView_JSONCarriesFavoriteFlag(t *testing.T) {
	view := services.NewPostDetailView(&models.Post{Title: "fav"}, true)

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, true, fields["isFavorite"])
}

func TestGroupPostsByDay(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	posts := []models.Post{
		{ID: 1, Title: "a", Address: "x", Date: day(3)},
		{ID: 2, Title: "b", Address: "y", Date: day(3)},
		{ID: 3, Title: "c", Address: "z", Date: day(10)},
	}

	grouped := services.GroupPostsByDay(posts)
	require.Len(t, grouped, 2)
	require.Len(t, grouped[3], 2)
	assert.Equal(t, "a", grouped[3][0].Title)
	assert.Equal(t, "b", grouped[3][1].Title)
	require.Len(t, grouped[10], 1)
	assert.Equal(t, "z", grouped[10][0].Address)
}

func TestGroupPostsByDay_Empty(t *testing.T) {
	assert.Empty(t, services.GroupPostsByDay(nil))
}
