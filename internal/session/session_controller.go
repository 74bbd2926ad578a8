package session

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/club"
	"github.com/touchlinehq/touchline/internal/middleware"
	"github.com/touchlinehq/touchline/internal/models"
	"github.com/touchlinehq/touchline/internal/team"
	"github.com/touchlinehq/touchline/pkg/responses"
)

// SessionController handles training-session planning, attendance and the
// AI assistant endpoint.
type SessionController struct {
	repo      SessionRepository
	teamRepo  team.TeamRepository
	clubRepo  club.ClubRepository
	assistant Assistant
	appConfig *config.Config
}

func NewSessionController(
	repo SessionRepository,
	teamRepo team.TeamRepository,
	clubRepo club.ClubRepository,
	assistant Assistant,
	appConfig *config.Config,
) *SessionController {
	return &SessionController{
		repo:      repo,
		teamRepo:  teamRepo,
		clubRepo:  clubRepo,
		assistant: assistant,
		appConfig: appConfig,
	}
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

func (sc *SessionController) requireClubAdmin(c *gin.Context, clubID uint) (uint, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return 0, false
	}
	isAdmin, err := sc.clubRepo.IsClubAdmin(clubID, userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check permissions: "+err.Error())
		return 0, false
	}
	if !isAdmin {
		responses.Forbidden(c, "Head coach rights on this club are required")
		return 0, false
	}
	return userID, true
}

// getOwnedTeam loads the team and checks it belongs to the club in the URL.
func (sc *SessionController) getOwnedTeam(c *gin.Context, clubID, teamID uint) (*team.Team, bool) {
	t, err := sc.teamRepo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
		return nil, false
	}
	if t == nil || t.IsDeleted || t.ClubID != clubID {
		responses.NotFound(c, "Team")
		return nil, false
	}
	return t, true
}

// getOwnedSession loads the session and checks the team/club chain in the URL.
func (sc *SessionController) getOwnedSession(c *gin.Context) (*TrainingSession, bool) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return nil, false
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return nil, false
	}
	if _, ok := sc.getOwnedTeam(c, clubID, teamID); !ok {
		return nil, false
	}
	sessionID, ok := parseUintParam(c, "session_id")
	if !ok {
		return nil, false
	}
	s, err := sc.repo.GetSessionByID(sessionID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve session: "+err.Error())
		return nil, false
	}
	if s == nil || s.TeamID != teamID {
		responses.NotFound(c, "Session")
		return nil, false
	}
	return s, true
}

func marshalTheme(c *gin.Context, v interface{}) ([]byte, bool) {
	payload, err := json.Marshal(v)
	if err != nil {
		responses.InternalServerError(c, "Failed to encode theme: "+err.Error())
		return nil, false
	}
	return payload, true
}

// CreateSession godoc
// @Summary Plan a training session for a team
// @Tags Sessions
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} responses.SuccessResponse{data=TrainingSession}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/sessions [post]
func (sc *SessionController) CreateSession(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	userID, ok := sc.requireClubAdmin(c, clubID)
	if !ok {
		return
	}
	if _, ok := sc.getOwnedTeam(c, clubID, teamID); !ok {
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	var theme []byte
	if req.Theme != nil {
		if theme, ok = marshalTheme(c, req.Theme); !ok {
			return
		}
	}

	s := TrainingSession{
		TeamID:          teamID,
		CreatedByID:     userID,
		Title:           req.Title,
		Objective:       req.Objective,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Space:           req.Space,
		Equipment:       models.StringSlice(req.Equipment),
		Theme:           theme,
		PracticeBlocks:  req.PracticeBlocks,
		Notes:           req.Notes,
	}
	if err := sc.repo.CreateSession(&s); err != nil {
		responses.InternalServerError(c, "Failed to create session: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Session created successfully", s)
}

// GetSessions godoc
// @Summary List a team's training sessions
// @Tags Sessions
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse{data=[]TrainingSession}
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/sessions [get]
func (sc *SessionController) GetSessions(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	teamID, ok := parseUintParam(c, "team_id")
	if !ok {
		return
	}
	if _, ok := sc.getOwnedTeam(c, clubID, teamID); !ok {
		return
	}

	page, limit := parsePagination(c)
	sessions, total, err := sc.repo.GetSessionsByTeamID(teamID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve sessions: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Sessions retrieved successfully", sessions, total, page, limit)
}

// GetSessionByID godoc
// @Summary Get one training session
// @Tags Sessions
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param session_id path uint true "Session ID"
// @Success 200 {object} responses.SuccessResponse{data=TrainingSession}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/sessions/{session_id} [get]
func (sc *SessionController) GetSessionByID(c *gin.Context) {
	s, ok := sc.getOwnedSession(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Session retrieved successfully", s)
}

// UpdateSession godoc
// @Summary Update a training session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param session_id path uint true "Session ID"
// @Param session body UpdateSessionRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=TrainingSession}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/sessions/{session_id} [put]
func (sc *SessionController) UpdateSession(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	if _, ok := sc.requireClubAdmin(c, clubID); !ok {
		return
	}
	s, ok := sc.getOwnedSession(c)
	if !ok {
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	if req.Title != nil {
		s.Title = *req.Title
	}
	if req.Objective != nil {
		s.Objective = *req.Objective
	}
	if req.Date != nil {
		s.Date = *req.Date
	}
	if req.DurationMinutes != nil {
		s.DurationMinutes = *req.DurationMinutes
	}
	if req.Space != nil {
		s.Space = *req.Space
	}
	if req.Equipment != nil {
		s.Equipment = models.StringSlice(req.Equipment)
	}
	if req.Theme != nil {
		theme, ok := marshalTheme(c, req.Theme)
		if !ok {
			return
		}
		s.Theme = theme
	}
	if req.PracticeBlocks != nil {
		s.PracticeBlocks = req.PracticeBlocks
	}
	if req.Notes != nil {
		s.Notes = *req.Notes
	}

	if err := sc.repo.UpdateSession(s); err != nil {
		responses.InternalServerError(c, "Failed to update session: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Session updated successfully", s)
}

// DeleteSession godoc
// @Summary Delete a training session
// @Tags Sessions
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param session_id path uint true "Session ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/sessions/{session_id} [delete]
func (sc *SessionController) DeleteSession(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	if _, ok := sc.requireClubAdmin(c, clubID); !ok {
		return
	}
	s, ok := sc.getOwnedSession(c)
	if !ok {
		return
	}
	if err := sc.repo.DeleteSession(s.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete session: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Session deleted successfully", nil)
}

// RecordAttendance godoc
// @Summary Record attendance for a session
// @Description Upserts the submitted register; resubmitting replaces prior
// entries for the same players.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param session_id path uint true "Session ID"
// @Param attendance body RecordAttendanceRequest true "Attendance entries"
// @Success 200 {object} responses.SuccessResponse{data=[]SessionAttendance}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/sessions/{session_id}/attendance [put]
func (sc *SessionController) RecordAttendance(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	if _, ok := sc.requireClubAdmin(c, clubID); !ok {
		return
	}
	s, ok := sc.getOwnedSession(c)
	if !ok {
		return
	}

	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	players, _, err := sc.teamRepo.GetPlayersByTeamID(s.TeamID, 1, 1000)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve roster: "+err.Error())
		return
	}
	roster := make(map[uint]bool, len(players))
	for _, p := range players {
		roster[p.ID] = true
	}

	entries := make([]SessionAttendance, 0, len(req.Entries))
	for _, e := range req.Entries {
		if !roster[e.PlayerID] {
			responses.BadRequest(c, "Player "+strconv.FormatUint(uint64(e.PlayerID), 10)+" is not on this team's roster")
			return
		}
		entries = append(entries, SessionAttendance{
			SessionID: s.ID,
			PlayerID:  e.PlayerID,
			Status:    e.Status,
			Note:      e.Note,
		})
	}

	if err := sc.repo.UpsertAttendance(entries); err != nil {
		responses.InternalServerError(c, "Failed to record attendance: "+err.Error())
		return
	}
	saved, err := sc.repo.GetAttendanceBySessionID(s.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve attendance: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Attendance recorded successfully", saved)
}

// GetAttendance godoc
// @Summary Get the attendance register for a session
// @Tags Sessions
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param session_id path uint true "Session ID"
// @Success 200 {object} responses.SuccessResponse{data=[]SessionAttendance}
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/sessions/{session_id}/attendance [get]
func (sc *SessionController) GetAttendance(c *gin.Context) {
	s, ok := sc.getOwnedSession(c)
	if !ok {
		return
	}
	entries, err := sc.repo.GetAttendanceBySessionID(s.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve attendance: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Attendance retrieved successfully", entries)
}

// AskAssistant godoc
// @Summary Ask the AI assistant about a planned session
// @Description Sends the session and the coach's message to the assistant.
// Intent "question" returns advice only; intent "change" also returns the
// full updated session document (the session is not persisted automatically;
// the client applies the change via the normal update endpoint).
// @Tags Sessions
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param session_id path uint true "Session ID"
// @Param request body AssistantRequest true "Coach's message"
// @Success 200 {object} responses.SuccessResponse{data=AssistantReply}
// @Failure 500 {object} responses.ErrorResponse "Assistant unavailable or reply malformed"
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/sessions/{session_id}/assistant [post]
func (sc *SessionController) AskAssistant(c *gin.Context) {
	clubID, ok := parseUintParam(c, "club_id")
	if !ok {
		return
	}
	if _, ok := sc.requireClubAdmin(c, clubID); !ok {
		return
	}
	s, ok := sc.getOwnedSession(c)
	if !ok {
		return
	}
	if sc.assistant == nil {
		responses.SendError(c, http.StatusServiceUnavailable, "The AI assistant is not configured")
		return
	}

	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	reply, err := sc.assistant.Ask(c.Request.Context(), s, req.Message, req.History)
	if err != nil {
		// The raw model output stays in the server log; clients get a
		// generic failure.
		log.Printf("assistant request for session %d failed: %v", s.ID, err)
		responses.InternalServerError(c, "The assistant could not process this request")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Assistant replied", reply)
}
