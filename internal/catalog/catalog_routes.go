package catalog

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/config"
	mw "github.com/touchlinehq/touchline/internal/middleware"
)

// CatalogRoutes sets up the read-only catalog routes.
func CatalogRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewCatalogRepository(db)
	controller := NewCatalogController(repo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/catalog/categories/:category", controller.ListCategory)
		authRoutes.GET("/catalog/position-defaults", controller.ListPositionDefaults)
	}
}
