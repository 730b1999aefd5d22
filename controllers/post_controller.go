package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pin-diary/api-go/services"
	"github.com/pin-diary/api-go/utils"
)

type PostController struct {
	Service *services.PostService
}

func NewPostController(service *services.PostService) *PostController {
	return &PostController{Service: service}
}

// GetAllMarkers godoc
// @Summary List map markers
// @Description Returns the map-pin projection of every post owned by the caller
// @Tags posts
// @Produce json
// @Success 200 {array} services.MarkerView
// @Router /markers/my [get]
func (pc *PostController) GetAllMarkers(c *gin.Context) {
	user := utils.GetUser(c)

	markers, err := pc.Service.GetAllMarkers(user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, markers)
}

// GetMyPosts godoc
// @Summary List my posts
// @Description Returns one page of the caller's posts, newest date first
// @Tags posts
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Success 200 {array} services.PostView
// @Router /posts/my [get]
func (pc *PostController) GetMyPosts(c *gin.Context) {
	user := utils.GetUser(c)
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
		return
	}

	posts, err := pc.Service.GetMyPosts(user.UserID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPostByID godoc
// @Summary Get post detail
// @Description Returns one post with images and the derived favorite flag
// @Tags posts
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} services.PostDetailView
// @Router /posts/{id} [get]
func (pc *PostController) GetPostByID(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	post, err := pc.Service.GetPostByID(user.UserID, uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a post with its image set in one write unit
// @Tags posts
// @Accept json
// @Produce json
// @Param post body services.CreatePostInput true "Post creation request"
// @Success 201 {object} services.PostView
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	var input services.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Service.CreatePost(user.UserID, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary Update a post
// @Description Updates editable fields and replaces the image set; location and address are immutable
// @Tags posts
// @Accept json
// @Produce json
// @Param id path integer true "Post ID"
// @Param post body services.UpdatePostInput true "Post update request"
// @Success 200 {object} services.PostDetailView
// @Router /posts/{id} [patch]
func (pc *PostController) UpdatePost(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	var input services.UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Service.UpdatePost(user.UserID, uint(id), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Deletes one post owned by the caller
// @Tags posts
// @Produce json
// @Param id path integer true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post id"})
		return
	}

	if err := pc.Service.DeletePost(user.UserID, uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// GetPostsByMonth godoc
// @Summary Calendar view
// @Description Returns the caller's posts for one month grouped by day of month
// @Tags posts
// @Produce json
// @Param year query integer true "Year"
// @Param month query integer true "Month (1-12)"
// @Success 200 {object} map[int][]services.CalendarEntryView
// @Router /posts [get]
func (pc *PostController) GetPostsByMonth(c *gin.Context) {
	user := utils.GetUser(c)
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	grouped, err := pc.Service.GetPostsByMonth(user.UserID, year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, grouped)
}

// SearchMyPosts godoc
// @Summary Search my posts
// @Description Pages through the caller's posts whose title or address contains the query
// @Tags posts
// @Produce json
// @Param query query string true "Search term"
// @Param page query integer false "Page number (default: 1)"
// @Success 200 {array} services.PostView
// @Router /posts/my/search [get]
func (pc *PostController) SearchMyPosts(c *gin.Context) {
	user := utils.GetUser(c)
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page number"})
		return
	}

	posts, err := pc.Service.SearchMyPosts(user.UserID, query, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
