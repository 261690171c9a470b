package auth

import (
	"github.com/Anasikus/time-tracker/config"
	"github.com/Anasikus/time-tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAuthRepository(db)
	controller := NewAuthController(repo, appConfig)

	public := router.Group("/auth")
	{
		public.POST("/login", controller.Login)
	}

	protected := router.Group("/auth")
	protected.Use(middleware.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.GET("/me", controller.Me)
	}
}
