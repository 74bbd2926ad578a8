package session

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/club"
	"github.com/touchlinehq/touchline/internal/middleware"
	"github.com/touchlinehq/touchline/internal/team"
)

// SessionRoutes registers session planning, attendance and assistant
// endpoints. The assistant is optional: without a Gemini API key the rest of
// the surface still works and the assistant endpoint reports unavailable.
func SessionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	var assistant Assistant
	if appConfig.AI.GeminiAPIKey != "" {
		a, err := NewGeminiAssistant(appConfig.AI.GeminiAPIKey, appConfig.AI.Model)
		if err != nil {
			log.Printf("AI assistant disabled: %v", err)
		} else {
			assistant = a
		}
	} else {
		log.Println("AI assistant disabled: GEMINI_API_KEY not set")
	}

	controller := NewSessionController(
		NewSessionRepository(db),
		team.NewTeamRepository(db),
		club.NewClubRepository(db),
		assistant,
		appConfig,
	)

	authRoutes := router.Group("/")
	authRoutes.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		sessions := authRoutes.Group("/clubs/:club_id/teams/:team_id/sessions")
		{
			sessions.POST("", controller.CreateSession)
			sessions.GET("", controller.GetSessions)
			sessions.GET("/:session_id", controller.GetSessionByID)
			sessions.PUT("/:session_id", controller.UpdateSession)
			sessions.DELETE("/:session_id", controller.DeleteSession)
			sessions.PUT("/:session_id/attendance", controller.RecordAttendance)
			sessions.GET("/:session_id/attendance", controller.GetAttendance)
			sessions.POST("/:session_id/assistant", controller.AskAssistant)
		}
	}
}
