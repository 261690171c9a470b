package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Anasikus/time-tracker/config"
	"github.com/Anasikus/time-tracker/internal/auth"
	"github.com/Anasikus/time-tracker/internal/moderation"
	"github.com/Anasikus/time-tracker/internal/player"
	"github.com/Anasikus/time-tracker/internal/playtime"
)

func SetupRoutes() *gin.Engine {
	appConfig := config.GetConfig()
	db := config.DB

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", playtime.PanelTokenHeader)
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Time Tracker API")
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	player.RegisterPlayerRoutes(api, db, appConfig)
	playtime.RegisterPlaytimeRoutes(api, db, appConfig)
	moderation.RegisterModerationRoutes(api, db, appConfig)

	return r
}
