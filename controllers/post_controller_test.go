package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pin-diary/api-go/controllers"
	"github.com/pin-diary/api-go/services"
	"github.com/pin-diary/api-go/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostRouter(t *testing.T, db *gorm.DB, userID uint) *gin.Engine {
	t.Helper()

	postStore := stores.NewPostStore(db)
	imageStore := stores.NewImageStore(db)
	favoriteStore := stores.NewFavoriteStore(db)

	pc := controllers.NewPostController(services.NewPostService(postStore, imageStore, favoriteStore))
	fc := controllers.NewFavoriteController(services.NewFavoriteService(postStore, favoriteStore))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := fakeAuth(userID, "user@example.com")

	posts := r.Group("/api/posts", auth)
	posts.POST("", pc.CreatePost)
	posts.GET("", pc.GetPostsByMonth)
	posts.GET("/my", pc.GetMyPosts)
	posts.GET("/my/search", pc.SearchMyPosts)
	posts.GET("/:id", pc.GetPostByID)
	posts.PATCH("/:id", pc.UpdatePost)
	posts.DELETE("/:id", pc.DeletePost)
	r.GET("/api/markers/my", auth, pc.GetAllMarkers)
	r.POST("/api/favorites/:id", auth, fc.ToggleFavorite)
	r.GET("/api/favorites/my", auth, fc.GetMyFavoritePosts)
	return r
}

func validPostBody() gin.H {
	return gin.H{
		"latitude":  37.5665,
		"longitude": 126.978,
		"title":     "lunch",
		"color":     "RED",
		"address":   "Seoul",
		"date":      "2024-05-03T00:00:00Z",
		"score":     3,
		"imageUris": []gin.H{{"uri": "img-1"}},
	}
}

func TestCreatePostEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := newPostRouter(t, db, 1)

	w := jsonRequest(t, r, http.MethodPost, "/api/posts", validPostBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var view services.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.NotZero(t, view.ID)
	assert.Equal(t, "lunch", view.Title)
	require.Len(t, view.Images, 1)
}

func TestCreatePostEndpoint_RejectsUnknownColor(t *testing.T) {
	db := setupTestDB(t)
	r := newPostRouter(t, db, 1)

	body := validPostBody()
	body["color"] = "ORANGE"
	w := jsonRequest(t, r, http.MethodPost, "/api/posts", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPostEndpoint_Statuses(t *testing.T) {
	db := setupTestDB(t)
	r := newPostRouter(t, db, 1)

	w := jsonRequest(t, r, http.MethodPost, "/api/posts", validPostBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created services.PostView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = jsonRequest(t, r, http.MethodGet, "/api/posts/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = jsonRequest(t, r, http.MethodGet, "/api/posts/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The same post through another user's eyes does not exist.
	other := newPostRouter(t, db, 2)
	w = jsonRequest(t, other, http.MethodGet, "/api/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = jsonRequest(t, r, http.MethodGet, "/api/posts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail services.PostDetailView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.False(t, detail.IsFavorite)
}

func TestDeletePostEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := newPostRouter(t, db, 1)

	w := jsonRequest(t, r, http.MethodPost, "/api/posts", validPostBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, r, http.MethodDelete, "/api/posts/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = jsonRequest(t, r, http.MethodDelete, "/api/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPostsByMonthEndpoint_Validation(t *testing.T) {
	db := setupTestDB(t)
	r := newPostRouter(t, db, 1)

	w := jsonRequest(t, r, http.MethodGet, "/api/posts?month=5", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = jsonRequest(t, r, http.MethodGet, "/api/posts?year=2024&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = jsonRequest(t, r, http.MethodGet, "/api/posts?year=2024&month=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestToggleFavoriteEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := newPostRouter(t, db, 1)

	w := jsonRequest(t, r, http.MethodPost, "/api/posts", validPostBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, r, http.MethodPost, "/api/favorites/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["favorited"])

	w = jsonRequest(t, r, http.MethodPost, "/api/favorites/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["favorited"])

	w = jsonRequest(t, r, http.MethodPost, "/api/favorites/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
