package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/club"
	mw "github.com/touchlinehq/touchline/internal/middleware"
)

// TeamRoutes sets up all team and roster routes.
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	clubRepo := club.NewClubRepository(db)
	teamController := NewTeamController(teamRepo, clubRepo, appConfig)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.POST("/clubs/:club_id/teams", teamController.CreateTeam)
		authRoutes.GET("/clubs/:club_id/teams", teamController.GetTeams)
		authRoutes.GET("/clubs/:club_id/teams/:team_id", teamController.GetTeamByID)
		authRoutes.PUT("/clubs/:club_id/teams/:team_id", teamController.UpdateTeam)
		authRoutes.DELETE("/clubs/:club_id/teams/:team_id", teamController.DeleteTeam)

		authRoutes.POST("/clubs/:club_id/teams/:team_id/players", teamController.AddPlayer)
		authRoutes.GET("/clubs/:club_id/teams/:team_id/players", teamController.GetPlayers)
		authRoutes.PUT("/clubs/:club_id/teams/:team_id/players/:player_id", teamController.UpdatePlayer)
		authRoutes.DELETE("/clubs/:club_id/teams/:team_id/players/:player_id", teamController.RemovePlayer)
	}
}
