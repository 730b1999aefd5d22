package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pin-diary/api-go/controllers"
)

func SetupFavoriteRoutes(protected *gin.RouterGroup, favoriteController *controllers.FavoriteController) {
	favorites := protected.Group("/favorites")
	{
		favorites.POST("/:id", favoriteController.ToggleFavorite)
		favorites.GET("/my", favoriteController.GetMyFavoritePosts)
	}
}
