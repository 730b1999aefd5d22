package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pin-diary/api-go/controllers"
)

func SetupPostRoutes(protected *gin.RouterGroup, postController *controllers.PostController) {
	posts := protected.Group("/posts")
	{
		posts.POST("", postController.CreatePost)
		posts.GET("", postController.GetPostsByMonth)
		posts.GET("/my", postController.GetMyPosts)
		posts.GET("/my/search", postController.SearchMyPosts)
		posts.GET("/:id", postController.GetPostByID)
		posts.PATCH("/:id", postController.UpdatePost)
		posts.DELETE("/:id", postController.DeletePost)
	}

	markers := protected.Group("/markers")
	{
		markers.GET("/my", postController.GetAllMarkers)
	}
}
