package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pin-diary/api-go/services"
	"github.com/pin-diary/api-go/utils"
)

type FavoriteController struct {
	Service *services.FavoriteService
}

func NewFavoriteController(service *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Service: service}
}

// ToggleFavorite godoc
// @Summary Favorite or unfavorite a post
// @Description Toggles the favorite marker on one of the caller's posts
// @Tags favorites
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /favorites/{id} [post]
func (fc *FavoriteController) ToggleFavorite(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	favorited, err := fc.Service.Toggle(user.UserID, uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "favorited": favorited})
}

// GetMyFavoritePosts godoc
// @Summary List my favorite posts
// @Description Returns one page of the caller's favorited posts, newest favorite first
// @Tags favorites
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Success 200 {array} services.PostView
// @Router /favorites/my [get]
func (fc *FavoriteController) GetMyFavoritePosts(c *gin.Context) {
	user := utils.GetUser(c)
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
		return
	}

	posts, err := fc.Service.GetMyFavoritePosts(user.UserID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
