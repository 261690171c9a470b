package player

import (
	"github.com/Anasikus/time-tracker/config"
	mw "github.com/Anasikus/time-tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPlayerRoutes wires the player CRUD and lookup endpoints.
// Reads are public, mutations sit behind the auth middleware.
func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewPlayerRepository(db)
	controller := NewPlayerController(repo, appConfig)

	players := router.Group("/players")
	{
		// Lookup routes must be registered before /:id.
		players.GET("/statuses", controller.GetStatuses)
		players.GET("/positions", controller.GetPositions)
		players.GET("/servers", controller.GetServers)

		players.GET("", controller.GetAllPlayers)
		players.GET("/:id", controller.GetPlayerByID)
	}

	protected := router.Group("/players")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.POST("", controller.CreatePlayer)
		protected.PUT("/:id", controller.UpdatePlayer)
		protected.DELETE("/:id", controller.DeletePlayer)
	}
}
