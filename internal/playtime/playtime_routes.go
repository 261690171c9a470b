package playtime

import (
	"time"

	"github.com/Anasikus/time-tracker/config"
	mw "github.com/Anasikus/time-tracker/internal/middleware"
	"github.com/Anasikus/time-tracker/internal/panel"
	"github.com/Anasikus/time-tracker/internal/player"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPlaytimeRoutes wires the playtime read, write and sync endpoints.
func RegisterPlaytimeRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerRepo := player.NewPlayerRepository(db)
	repo := NewTimeLogRepository(db)
	aggregator := NewAggregator(playerRepo, repo)
	panelClient := panel.NewHTTPClient(appConfig.Panel.BaseURL, time.Duration(appConfig.Panel.TimeoutSeconds)*time.Second)
	sync := NewSyncService(playerRepo, repo, panelClient)
	controller := NewPlaytimeController(repo, aggregator, sync, appConfig)

	playtime := router.Group("/playtime")
	{
		playtime.GET("", controller.GetPlaytimeForRange)
		playtime.GET("/date", controller.GetPlaytimeByDate)
		playtime.GET("/month", controller.GetMonthSummary)
	}

	protected := router.Group("/playtime")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret, db))
	{
		protected.POST("", controller.AddPlaytime)
		protected.POST("/sync", controller.SyncPlaytime)
	}
}
