package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pin-diary/api-go/config"
	"github.com/pin-diary/api-go/controllers"
	"github.com/pin-diary/api-go/middleware"
	"github.com/pin-diary/api-go/services"
	"github.com/pin-diary/api-go/stores"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Stores and services
	postStore := stores.NewPostStore(db)
	imageStore := stores.NewImageStore(db)
	favoriteStore := stores.NewFavoriteStore(db)
	postService := services.NewPostService(postStore, imageStore, favoriteStore)
	favoriteService := services.NewFavoriteService(postStore, favoriteStore)

	// Controllers
	authController := controllers.NewAuthController(db, config.NewKakaoConfig())
	postController := controllers.NewPostController(postService)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/signup", authController.Signup)
		public.POST("/auth/signin", authController.Signin)
		public.POST("/auth/oauth/kakao", authController.KakaoLogin)
		public.POST("/auth/refresh", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/logout", authController.Logout)
		protected.GET("/auth/me", authController.GetProfile)
		protected.PATCH("/auth/me", authController.EditProfile)
		protected.PATCH("/auth/category", authController.UpdateCategories)
		protected.DELETE("/auth/me", authController.DeleteAccount)

		SetupPostRoutes(protected, postController)
		SetupFavoriteRoutes(protected, favoriteController)
		SetupUploadRoutes(protected, uploadController)
	}
}
