package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/auth"
	"github.com/touchlinehq/touchline/internal/catalog"
	"github.com/touchlinehq/touchline/internal/club"
	"github.com/touchlinehq/touchline/internal/methodology"
	"github.com/touchlinehq/touchline/internal/session"
	"github.com/touchlinehq/touchline/internal/team"
)

// SetupRoutes builds the engine and mounts every feature's routes under /api.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	club.ClubRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, appConfig)
	catalog.CatalogRoutes(api, db, appConfig)
	methodology.MethodologyRoutes(api, db, appConfig)
	session.SessionRoutes(api, db, appConfig)

	return r
}
