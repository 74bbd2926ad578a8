package team

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/club"
	"github.com/touchlinehq/touchline/internal/middleware"
	"github.com/touchlinehq/touchline/pkg/responses"
)

// TeamController handles team and roster HTTP requests. Club authorization is
// delegated to the club repository.
type TeamController struct {
	repo      TeamRepository
	clubRepo  club.ClubRepository
	appConfig *config.Config
}

func NewTeamController(repo TeamRepository, clubRepo club.ClubRepository, appConfig *config.Config) *TeamController {
	return &TeamController{repo: repo, clubRepo: clubRepo, appConfig: appConfig}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func (tc *TeamController) requireClubAdmin(c *gin.Context, clubID uint) bool {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return false
	}
	isAdmin, err := tc.clubRepo.IsClubAdmin(clubID, userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check permissions: "+err.Error())
		return false
	}
	if !isAdmin {
		responses.Forbidden(c, "Head coach rights on this club are required")
		return false
	}
	return true
}

// getOwnedTeam loads the team and checks it belongs to the club in the URL.
func (tc *TeamController) getOwnedTeam(c *gin.Context, clubID, teamID uint) (*Team, bool) {
	team, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return nil, false
	}
	if team == nil || team.IsDeleted || team.ClubID != clubID {
		responses.NotFound(c, "Team")
		return nil, false
	}
	return team, true
}

// CreateTeam godoc
// @Summary Create a team in a club
// @Tags Teams
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team body CreateTeamRequest true "Team data"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	if !tc.requireClubAdmin(c, clubID) {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	format := req.MatchFormat
	if format == "" {
		format = Format11v11
	}
	team := Team{
		ClubID:      clubID,
		Name:        req.Name,
		AgeGroup:    req.AgeGroup,
		MatchFormat: format,
		CreatedByID: userID,
	}
	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.InternalServerError(c, "Failed to create team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetTeams godoc
// @Summary List a club's teams
// @Tags Teams
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team}
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams [get]
func (tc *TeamController) GetTeams(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	teams, total, err := tc.repo.GetTeamsByClubID(clubID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// GetTeamByID godoc
// @Summary Get a team by ID
// @Tags Teams
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	team, ok := tc.getOwnedTeam(c, clubID, teamID)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param team body UpdateTeamRequest true "Team fields"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	if !tc.requireClubAdmin(c, clubID) {
		return
	}
	team, ok := tc.getOwnedTeam(c, clubID, teamID)
	if !ok {
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.AgeGroup != nil {
		team.AgeGroup = *req.AgeGroup
	}
	if req.MatchFormat != nil {
		team.MatchFormat = *req.MatchFormat
	}
	if err := tc.repo.UpdateTeam(team); err != nil {
		responses.InternalServerError(c, "Failed to update team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Soft-delete a team
// @Tags Teams
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	if !tc.requireClubAdmin(c, clubID) {
		return
	}
	if _, ok := tc.getOwnedTeam(c, clubID, teamID); !ok {
		return
	}
	if err := tc.repo.DeleteTeam(teamID); err != nil {
		responses.InternalServerError(c, "Failed to delete team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}

// --- Roster ---

// AddPlayer godoc
// @Summary Add a player to a team's roster
// @Tags Teams
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param player body CreatePlayerRequest true "Player data"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/players [post]
func (tc *TeamController) AddPlayer(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	if !tc.requireClubAdmin(c, clubID) {
		return
	}
	if _, ok := tc.getOwnedTeam(c, clubID, teamID); !ok {
		return
	}

	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	player := Player{
		TeamID:      teamID,
		Name:        req.Name,
		PositionKey: req.PositionKey,
		SquadNumber: req.SquadNumber,
		IsActive:    true,
		Notes:       req.Notes,
	}
	if err := tc.repo.CreatePlayer(&player); err != nil {
		responses.InternalServerError(c, "Failed to add player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player added successfully", player)
}

// GetPlayers godoc
// @Summary List a team's roster
// @Tags Teams
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(25)
// @Success 200 {object} responses.PaginatedResponse{data=[]Player}
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/players [get]
func (tc *TeamController) GetPlayers(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	if _, ok := tc.getOwnedTeam(c, clubID, teamID); !ok {
		return
	}
	page, limit := parsePagination(c)
	players, total, err := tc.repo.GetPlayersByTeamID(teamID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve players: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Players retrieved successfully", players, total, page, limit)
}

// UpdatePlayer godoc
// @Summary Update a roster entry
// @Tags Teams
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param player_id path uint true "Player ID"
// @Param player body UpdatePlayerRequest true "Player fields"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/players/{player_id} [put]
func (tc *TeamController) UpdatePlayer(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	playerID, ok := parseUintParam(c, "player_id")
	if !ok {
		return
	}
	if !tc.requireClubAdmin(c, clubID) {
		return
	}
	if _, ok := tc.getOwnedTeam(c, clubID, teamID); !ok {
		return
	}

	player, err := tc.repo.GetPlayerByID(playerID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve player: "+err.Error())
		return
	}
	if player == nil || player.TeamID != teamID {
		responses.NotFound(c, "Player")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.PositionKey != nil {
		player.PositionKey = *req.PositionKey
	}
	if req.SquadNumber != nil {
		player.SquadNumber = *req.SquadNumber
	}
	if req.IsActive != nil {
		player.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		player.Notes = *req.Notes
	}
	if err := tc.repo.UpdatePlayer(player); err != nil {
		responses.InternalServerError(c, "Failed to update player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", player)
}

// RemovePlayer godoc
// @Summary Remove a player from the roster
// @Tags Teams
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param player_id path uint true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/players/{player_id} [delete]
func (tc *TeamController) RemovePlayer(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	playerID, ok := parseUintParam(c, "player_id")
	if !ok {
		return
	}
	if !tc.requireClubAdmin(c, clubID) {
		return
	}
	if _, ok := tc.getOwnedTeam(c, clubID, teamID); !ok {
		return
	}
	if err := tc.repo.RemovePlayer(playerID); err != nil {
		responses.InternalServerError(c, "Failed to remove player: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player removed", nil)
}
