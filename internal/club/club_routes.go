package club

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/config"
	mw "github.com/touchlinehq/touchline/internal/middleware"
)

// ClubRoutes sets up all club-related routes. Everything is behind auth; the
// club is the tenant boundary.
func ClubRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	clubRepo := NewClubRepository(db)
	clubController := NewClubController(clubRepo, appConfig)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.POST("/clubs", clubController.CreateClub)
		authRoutes.GET("/clubs/:club_id", clubController.GetClubByID)
		authRoutes.PUT("/clubs/:club_id", clubController.UpdateClub)
		authRoutes.DELETE("/clubs/:club_id", clubController.DeleteClub)
		authRoutes.GET("/users/me/clubs", clubController.GetMyClubs)

		authRoutes.POST("/clubs/:club_id/members", clubController.AddMember)
		authRoutes.GET("/clubs/:club_id/members", clubController.GetMembers)
		authRoutes.PUT("/clubs/:club_id/members/:user_id/role", clubController.UpdateMemberRole)
		authRoutes.DELETE("/clubs/:club_id/members/:user_id", clubController.RemoveMember)

		authRoutes.PUT("/clubs/:club_id/facilities", clubController.SaveFacilities)
		authRoutes.GET("/clubs/:club_id/facilities", clubController.GetFacilities)

		authRoutes.GET("/clubs/:club_id/onboarding", clubController.GetOnboardingStatus)
		authRoutes.POST("/clubs/:club_id/onboarding/complete", clubController.CompleteOnboarding)
	}
}
