package moderation

import (
	"github.com/Anasikus/time-tracker/config"
	mw "github.com/Anasikus/time-tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterModerationRoutes wires the moderation counter endpoints.
func RegisterModerationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewModerationRepository(db)
	controller := NewModerationController(repo, appConfig)

	moderation := router.Group("/moderation")
	{
		moderation.GET("", controller.GetStats)
		moderation.GET("/players", controller.GetPlayers)
	}

	protected := router.Group("/moderation")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.POST("", controller.SaveStat)
	}
}
