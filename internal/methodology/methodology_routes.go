package methodology

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/catalog"
	"github.com/touchlinehq/touchline/internal/club"
	"github.com/touchlinehq/touchline/internal/middleware"
	"github.com/touchlinehq/touchline/internal/team"
)

// MethodologyRoutes registers the scoped configuration endpoints. The same
// kind-keyed surface is mounted twice: once at club scope and once at team
// scope. Team scope additionally supports DELETE (revert to club).
func MethodologyRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	store := NewConfigStore(db)
	controller := NewMethodologyController(
		store,
		NewResolver(store),
		NewRuleRepository(db),
		club.NewClubRepository(db),
		team.NewTeamRepository(db),
		catalog.NewCatalogRepository(db),
		appConfig,
	)

	authRoutes := router.Group("/")
	authRoutes.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		registerConfigRoutes(authRoutes.Group("/clubs/:club_id/methodology"), controller)

		teamScope := authRoutes.Group("/clubs/:club_id/teams/:team_id/methodology")
		registerConfigRoutes(teamScope, controller)
		teamScope.DELETE("/:kind", controller.RevertConfig)

		rules := authRoutes.Group("/clubs/:club_id/methodology-rules")
		{
			rules.GET("", controller.GetRules)
			rules.POST("", controller.CreateRule)
			rules.PUT("/:rule_id", controller.UpdateRule)
			rules.DELETE("/:rule_id", controller.DeleteRule)
		}
	}
}

func registerConfigRoutes(group *gin.RouterGroup, controller *MethodologyController) {
	group.GET("/:kind", controller.GetConfig)
	group.PUT("/:kind", controller.PutConfig)
	group.POST("/:kind/defaults", controller.ApplyDefaults)

	group.POST("/:kind/positions/:position_key/toggle", controller.TogglePosition)
	group.PUT("/:kind/profiles/:profile_id/attributes", controller.UpdateProfileAttributes)

	group.POST("/:kind/weeks", controller.AddWeek)
	group.DELETE("/:kind/weeks/:week_id", controller.RemoveWeek)
	group.PUT("/:kind/week-order", controller.ReorderWeeks)
	group.PUT("/:kind/weeks/:week_id/days/:day_of_week", controller.SetDayTheme)
}
