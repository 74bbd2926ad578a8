package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/middleware"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, appConfig)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/refresh-token", authController.RefreshToken)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authProtected.GET("/me", authController.GetProfile)
		authProtected.PUT("/me", authController.UpdateProfile)
		authProtected.POST("/change-password", authController.ChangePassword)
		authProtected.POST("/logout", authController.Logout)
	}
}
