package methodology

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/catalog"
	"github.com/touchlinehq/touchline/internal/club"
	"github.com/touchlinehq/touchline/internal/middleware"
	"github.com/touchlinehq/touchline/internal/team"
	"github.com/touchlinehq/touchline/pkg/responses"
)

// MethodologyController handles the scoped configuration endpoints: zones,
// positional profiles, training syllabus and methodology rules.
type MethodologyController struct {
	store       ConfigStore
	resolver    *Resolver
	ruleRepo    RuleRepository
	clubRepo    club.ClubRepository
	teamRepo    team.TeamRepository
	catalogRepo catalog.CatalogRepository
	appConfig   *config.Config
}

func NewMethodologyController(
	store ConfigStore,
	resolver *Resolver,
	ruleRepo RuleRepository,
	clubRepo club.ClubRepository,
	teamRepo team.TeamRepository,
	catalogRepo catalog.CatalogRepository,
	appConfig *config.Config,
) *MethodologyController {
	return &MethodologyController{
		store:       store,
		resolver:    resolver,
		ruleRepo:    ruleRepo,
		clubRepo:    clubRepo,
		teamRepo:    teamRepo,
		catalogRepo: catalogRepo,
		appConfig:   appConfig,
	}
}

// --- DTOs ---

type ApplyDefaultsRequest struct {
	ZoneCount   int    `json:"zone_count" binding:"omitempty,oneof=3 4"`
	MatchFormat string `json:"match_format" binding:"omitempty,oneof=5v5 7v7 9v9 11v11"`
	// Confirm must be true to overwrite an existing configuration; changing
	// the zone count discards all existing zone content.
	Confirm bool `json:"confirm"`
}

type TogglePositionRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type UpdateAttributesRequest struct {
	InPossession    []string `json:"in_possession"`
	OutOfPossession []string `json:"out_of_possession"`
}

type ReorderWeeksRequest struct {
	WeekIDs []string `json:"week_ids" binding:"required,min=1"`
}

type SetDayThemeRequest struct {
	Theme    *ThemeSelection `json:"theme"`
	Comments *string         `json:"comments"`
}

type CreateRuleRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=5000"`
}

type UpdateRuleRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=5000"`
}

// --- scope helpers ---

type scope struct {
	clubID uint
	teamID *uint
}

// parseScope reads club_id and, when present in the route, team_id. A team
// that does not belong to the club is reported as not found.
func (mc *MethodologyController) parseScope(c *gin.Context) (scope, bool) {
	clubID64, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid club ID")
		return scope{}, false
	}
	sc := scope{clubID: uint(clubID64)}

	if teamParam := c.Param("team_id"); teamParam != "" {
		teamID64, err := strconv.ParseUint(teamParam, 10, 32)
		if err != nil {
			responses.BadRequest(c, "Invalid team ID")
			return scope{}, false
		}
		t, err := mc.teamRepo.GetTeamByID(uint(teamID64))
		if err != nil {
			responses.InternalServerError(c, "Failed to retrieve team: "+err.Error())
			return scope{}, false
		}
		if t == nil || t.IsDeleted || t.ClubID != sc.clubID {
			responses.NotFound(c, "Team")
			return scope{}, false
		}
		teamID := uint(teamID64)
		sc.teamID = &teamID
	}
	return sc, true
}

func (mc *MethodologyController) parseKind(c *gin.Context) (ConfigKind, bool) {
	kind, err := ParseConfigKind(c.Param("kind"))
	if err != nil {
		responses.BadRequest(c, err.Error())
		return "", false
	}
	return kind, true
}

func (mc *MethodologyController) requireClubAdmin(c *gin.Context, clubID uint) (uint, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return 0, false
	}
	isAdmin, err := mc.clubRepo.IsClubAdmin(clubID, userID)
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

// loadView resolves the current view of kind at the scope (team override,
// club fallback, or unconfigured) and decodes it into out. Returns false with
// a response already written when the scope is unconfigured or broken.
func (mc *MethodologyController) loadView(c *gin.Context, kind ConfigKind, sc scope, actorID uint, out interface{}) bool {
	res, err := mc.resolver.Resolve(kind, sc.clubID, sc.teamID, actorID)
	if err != nil {
		responses.InternalServerError(c, "Failed to resolve configuration: "+err.Error())
		return false
	}
	if res.Unconfigured() {
		responses.SendError(c, http.StatusConflict, "This configuration has not been set up yet")
		return false
	}
	if err := json.Unmarshal(res.Payload, out); err != nil {
		responses.InternalServerError(c, "Stored configuration is malformed: "+err.Error())
		return false
	}
	return true
}

// putPayload marshals v and stores it as the record for the scope.
func (mc *MethodologyController) putPayload(c *gin.Context, kind ConfigKind, sc scope, actorID uint, v interface{}) bool {
	payload, err := json.Marshal(v)
	if err != nil {
		responses.InternalServerError(c, "Failed to encode configuration: "+err.Error())
		return false
	}
	if err := mc.store.Put(kind, sc.clubID, sc.teamID, actorID, payload); err != nil {
		responses.InternalServerError(c, "Failed to save configuration: "+err.Error())
		return false
	}
	return true
}

// --- configuration endpoints ---

// GetConfig godoc
// @Summary Resolve a methodology configuration for a scope
// @Description Team override wins outright when present, otherwise the club
// default applies. Source "none" means the scope is unconfigured. Resolving
// the game model at team scope materializes a team-local copy of the club
// record on first read.
// @Tags Methodology
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Configuration kind" Enums(game_model, playing_methodology, positional_profiles, training_syllabus)
// @Success 200 {object} responses.SuccessResponse{data=Resolution}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind} [get]
func (mc *MethodologyController) GetConfig(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	kind, ok := mc.parseKind(c)
	if !ok {
		return
	}
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	res, err := mc.resolver.Resolve(kind, sc.clubID, sc.teamID, userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to resolve configuration: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Configuration resolved", res)
}

// PutConfig godoc
// @Summary Replace a methodology configuration at a scope
// @Description Full replace of the record for the scope; the payload is
// validated and canonicalized per kind (zone pruning and ordering, profile
// attribute caps, syllabus week renumbering) before persisting.
// @Tags Methodology
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Configuration kind"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind} [put]
func (mc *MethodologyController) PutConfig(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	kind, ok := mc.parseKind(c)
	if !ok {
		return
	}
	userID, ok := mc.requireClubAdmin(c, sc.clubID)
	if !ok {
		return
	}

	switch {
	case kind.IsZoneKind():
		var set ZoneSet
		if err := c.ShouldBindJSON(&set); err != nil {
			responses.BadRequest(c, "Invalid zone set payload: "+err.Error())
			return
		}
		if err := NormalizeZoneSet(&set); err != nil {
			responses.BadRequest(c, err.Error())
			return
		}
		if !mc.putPayload(c, kind, sc, userID, set) {
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Configuration saved", set)

	case kind == KindPositionalProfiles:
		var set ProfileSet
		if err := c.ShouldBindJSON(&set); err != nil {
			responses.BadRequest(c, "Invalid profile payload: "+err.Error())
			return
		}
		for i := range set.Profiles {
			set.Profiles[i].Attributes = NormalizeAttributes(set.Profiles[i].Attributes)
		}
		if !mc.putPayload(c, kind, sc, userID, set) {
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Configuration saved", set)

	case kind == KindTrainingSyllabus:
		var syllabus TrainingSyllabus
		if err := c.ShouldBindJSON(&syllabus); err != nil {
			responses.BadRequest(c, "Invalid syllabus payload: "+err.Error())
			return
		}
		if len(syllabus.Weeks) == 0 {
			responses.BadRequest(c, "A syllabus must contain at least one week")
			return
		}
		syllabus.renumberWeeks()
		if !mc.putPayload(c, kind, sc, userID, syllabus) {
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Configuration saved", syllabus)
	}
}

// RevertConfig godoc
// @Summary Revert a team's override to the club default
// @Description Clears the team-level record so the next resolve falls through
// to the club default (which may itself be unconfigured).
// @Tags Methodology
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param team_id path uint true "Team ID"
// @Param kind path string true "Configuration kind"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/teams/{team_id}/methodology/{kind} [delete]
func (mc *MethodologyController) RevertConfig(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	kind, ok := mc.parseKind(c)
	if !ok {
		return
	}
	if _, ok := mc.requireClubAdmin(c, sc.clubID); !ok {
		return
	}
	if sc.teamID == nil {
		responses.BadRequest(c, "Revert applies to team scope only")
		return
	}
	if err := mc.resolver.Revert(kind, sc.clubID, *sc.teamID); err != nil {
		responses.InternalServerError(c, "Failed to revert configuration: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Reverted to club defaults", nil)
}

// ApplyDefaults godoc
// @Summary Initialize or reset a configuration with system defaults
// @Description For zone kinds, requires zone_count (3 or 4). Overwriting an
// existing record is destructive and requires confirm=true; none of the
// previous zone content survives a zone-count change.
// @Tags Methodology
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Configuration kind"
// @Param body body ApplyDefaultsRequest true "Defaults options"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse "Existing record and confirm not set"
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind}/defaults [post]
func (mc *MethodologyController) ApplyDefaults(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	kind, ok := mc.parseKind(c)
	if !ok {
		return
	}
	userID, ok := mc.requireClubAdmin(c, sc.clubID)
	if !ok {
		return
	}
	var req ApplyDefaultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	existing, err := mc.store.Get(kind, sc.clubID, sc.teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing configuration: "+err.Error())
		return
	}
	if existing != nil && !req.Confirm {
		responses.SendError(c, http.StatusConflict, "A configuration already exists for this scope; pass confirm=true to replace it")
		return
	}

	switch {
	case kind.IsZoneKind():
		if req.ZoneCount == 0 {
			responses.BadRequest(c, "zone_count is required for zone configurations")
			return
		}
		set, err := DefaultZoneSet(req.ZoneCount)
		if err != nil {
			responses.BadRequest(c, err.Error())
			return
		}
		set.MatchFormat = req.MatchFormat
		if !mc.putPayload(c, kind, sc, userID, set) {
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Default zones applied", set)

	case kind == KindPositionalProfiles:
		set := ProfileSet{Profiles: []PositionalProfile{}}
		if !mc.putPayload(c, kind, sc, userID, set) {
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Empty profile set created", set)

	case kind == KindTrainingSyllabus:
		syllabus := DefaultSyllabus()
		if !mc.putPayload(c, kind, sc, userID, syllabus) {
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Default syllabus created", syllabus)
	}
}

// --- positional profiles ---

// TogglePosition godoc
// @Summary Activate or deactivate a positional profile
// @Description First activation creates the profile, inheriting attribute
// keys from the system position-default catalog when available. Deactivation
// is soft: attributes survive for reactivation.
// @Tags Methodology
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Must be positional_profiles"
// @Param position_key path string true "Position catalog key"
// @Param body body TogglePositionRequest true "Toggle"
// @Success 200 {object} responses.SuccessResponse{data=ProfileSet}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind}/positions/{position_key}/toggle [post]
func (mc *MethodologyController) TogglePosition(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	kind, ok := mc.parseKind(c)
	if !ok {
		return
	}
	if kind != KindPositionalProfiles {
		responses.BadRequest(c, "Position toggles apply to positional_profiles only")
		return
	}
	userID, ok := mc.requireClubAdmin(c, sc.clubID)
	if !ok {
		return
	}
	var req TogglePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	positionKey := c.Param("position_key")
	entry, err := mc.catalogRepo.GetEntry(catalog.CategoryPositions, positionKey)
	if err != nil {
		responses.InternalServerError(c, "Failed to check position catalog: "+err.Error())
		return
	}
	if entry == nil {
		responses.NotFound(c, "Position")
		return
	}

	var set ProfileSet
	if !mc.loadView(c, kind, sc, userID, &set) {
		return
	}

	var defaults *ProfileAttributes
	if *req.Active {
		def, err := mc.catalogRepo.GetPositionDefault(positionKey)
		if err != nil {
			responses.InternalServerError(c, "Failed to load position defaults: "+err.Error())
			return
		}
		if def != nil {
			defaults = &ProfileAttributes{
				InPossession:    def.InPossession,
				OutOfPossession: def.OutOfPossession,
			}
		}
	}

	set.TogglePosition(positionKey, *req.Active, defaults)
	if !mc.putPayload(c, kind, sc, userID, set) {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Position toggled", set)
}

// UpdateProfileAttributes godoc
// @Summary Replace a positional profile's attribute lists
// @Description Full replace. Blank entries are dropped and each list is
// capped at 5 keys at this boundary.
// @Tags Methodology
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Must be positional_profiles"
// @Param profile_id path string true "Profile ID"
// @Param body body UpdateAttributesRequest true "Attribute lists"
// @Success 200 {object} responses.SuccessResponse{data=ProfileSet}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind}/profiles/{profile_id}/attributes [put]
func (mc *MethodologyController) UpdateProfileAttributes(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	kind, ok := mc.parseKind(c)
	if !ok {
		return
	}
	if kind != KindPositionalProfiles {
		responses.BadRequest(c, "Profile attributes apply to positional_profiles only")
		return
	}
	userID, ok := mc.requireClubAdmin(c, sc.clubID)
	if !ok {
		return
	}
	var req UpdateAttributesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	var set ProfileSet
	if !mc.loadView(c, kind, sc, userID, &set) {
		return
	}
	err := set.UpdateAttributes(c.Param("profile_id"), ProfileAttributes{
		InPossession:    req.InPossession,
		OutOfPossession: req.OutOfPossession,
	})
	if err != nil {
		responses.NotFound(c, "Profile")
		return
	}
	if !mc.putPayload(c, kind, sc, userID, set) {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Attributes updated", set)
}

// --- training syllabus ---

func (mc *MethodologyController) syllabusScope(c *gin.Context) (scope, uint, *TrainingSyllabus, bool) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return scope{}, 0, nil, false
	}
	kind, ok := mc.parseKind(c)
	if !ok {
		return scope{}, 0, nil, false
	}
	if kind != KindTrainingSyllabus {
		responses.BadRequest(c, "Week operations apply to training_syllabus only")
		return scope{}, 0, nil, false
	}
	userID, ok := mc.requireClubAdmin(c, sc.clubID)
	if !ok {
		return scope{}, 0, nil, false
	}
	var syllabus TrainingSyllabus
	if !mc.loadView(c, kind, sc, userID, &syllabus) {
		return scope{}, 0, nil, false
	}
	return sc, userID, &syllabus, true
}

// AddWeek godoc
// @Summary Append a week to the training syllabus
// @Tags Methodology
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Must be training_syllabus"
// @Success 200 {object} responses.SuccessResponse{data=TrainingSyllabus}
// @Failure 409 {object} responses.ErrorResponse "Syllabus not configured"
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind}/weeks [post]
func (mc *MethodologyController) AddWeek(c *gin.Context) {
	sc, userID, syllabus, ok := mc.syllabusScope(c)
	if !ok {
		return
	}
	syllabus.AddWeek()
	if !mc.putPayload(c, KindTrainingSyllabus, sc, userID, syllabus) {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Week added", syllabus)
}

// RemoveWeek godoc
// @Summary Remove a week from the training syllabus
// @Description A syllabus always keeps at least one week; remaining weeks are
// renumbered densely from 1.
// @Tags Methodology
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Must be training_syllabus"
// @Param week_id path string true "Week ID"
// @Success 200 {object} responses.SuccessResponse{data=TrainingSyllabus}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind}/weeks/{week_id} [delete]
func (mc *MethodologyController) RemoveWeek(c *gin.Context) {
	sc, userID, syllabus, ok := mc.syllabusScope(c)
	if !ok {
		return
	}
	if err := syllabus.RemoveWeek(c.Param("week_id")); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	if !mc.putPayload(c, KindTrainingSyllabus, sc, userID, syllabus) {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Week removed", syllabus)
}

// ReorderWeeks godoc
// @Summary Persist a full reordering of syllabus weeks
// @Tags Methodology
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Must be training_syllabus"
// @Param body body ReorderWeeksRequest true "Week IDs in the new order"
// @Success 200 {object} responses.SuccessResponse{data=TrainingSyllabus}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind}/week-order [put]
func (mc *MethodologyController) ReorderWeeks(c *gin.Context) {
	var req ReorderWeeksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	sc, userID, syllabus, ok := mc.syllabusScope(c)
	if !ok {
		return
	}
	if err := syllabus.ReorderWeeks(req.WeekIDs); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	if !mc.putPayload(c, KindTrainingSyllabus, sc, userID, syllabus) {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Weeks reordered", syllabus)
}

// SetDayTheme godoc
// @Summary Assign a zone theme and comments to one syllabus day
// @Description The theme selection is stored as a snapshot of the zone block
// at assignment time, so later zone edits do not rewrite the plan.
// @Tags Methodology
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param kind path string true "Must be training_syllabus"
// @Param week_id path string true "Week ID"
// @Param day_of_week path int true "Day of week, 0=Monday .. 6=Sunday"
// @Param body body SetDayThemeRequest true "Theme and comments (theme null clears)"
// @Success 200 {object} responses.SuccessResponse{data=TrainingSyllabus}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology/{kind}/weeks/{week_id}/days/{day_of_week} [put]
func (mc *MethodologyController) SetDayTheme(c *gin.Context) {
	dayOfWeek, err := strconv.Atoi(c.Param("day_of_week"))
	if err != nil {
		responses.BadRequest(c, "Invalid day of week")
		return
	}
	var req SetDayThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	sc, userID, syllabus, ok := mc.syllabusScope(c)
	if !ok {
		return
	}
	if err := syllabus.SetDayTheme(c.Param("week_id"), dayOfWeek, req.Theme, req.Comments); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	if !mc.putPayload(c, KindTrainingSyllabus, sc, userID, syllabus) {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Day updated", syllabus)
}

// --- methodology rules ---

// GetRules godoc
// @Summary List a club's training methodology rules
// @Tags Methodology
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=[]TrainingRule}
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology-rules [get]
func (mc *MethodologyController) GetRules(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	rules, err := mc.ruleRepo.GetRulesByClubID(sc.clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rules: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rules retrieved successfully", rules)
}

// CreateRule godoc
// @Summary Create a training methodology rule
// @Tags Methodology
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param body body CreateRuleRequest true "Rule data"
// @Success 201 {object} responses.SuccessResponse{data=TrainingRule}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology-rules [post]
func (mc *MethodologyController) CreateRule(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	userID, ok := mc.requireClubAdmin(c, sc.clubID)
	if !ok {
		return
	}
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	rule := TrainingRule{
		ClubID:      sc.clubID,
		CoachID:     userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := mc.ruleRepo.CreateRule(&rule); err != nil {
		responses.InternalServerError(c, "Failed to create rule: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Rule created successfully", rule)
}

// UpdateRule godoc
// @Summary Update a training methodology rule
// @Tags Methodology
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param rule_id path uint true "Rule ID"
// @Param body body UpdateRuleRequest true "Rule fields"
// @Success 200 {object} responses.SuccessResponse{data=TrainingRule}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology-rules/{rule_id} [put]
func (mc *MethodologyController) UpdateRule(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	if _, ok := mc.requireClubAdmin(c, sc.clubID); !ok {
		return
	}
	ruleID, err := strconv.ParseUint(c.Param("rule_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid rule ID")
		return
	}
	rule, err := mc.ruleRepo.GetRuleByID(uint(ruleID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rule: "+err.Error())
		return
	}
	if rule == nil || rule.ClubID != sc.clubID {
		responses.NotFound(c, "Rule")
		return
	}
	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	if req.Title != nil {
		rule.Title = *req.Title
	}
	if req.Description != nil {
		rule.Description = *req.Description
	}
	if err := mc.ruleRepo.UpdateRule(rule); err != nil {
		responses.InternalServerError(c, "Failed to update rule: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rule updated successfully", rule)
}

// DeleteRule godoc
// @Summary Delete a training methodology rule
// @Tags Methodology
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param rule_id path uint true "Rule ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/methodology-rules/{rule_id} [delete]
func (mc *MethodologyController) DeleteRule(c *gin.Context) {
	sc, ok := mc.parseScope(c)
	if !ok {
		return
	}
	if _, ok := mc.requireClubAdmin(c, sc.clubID); !ok {
		return
	}
	ruleID, err := strconv.ParseUint(c.Param("rule_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid rule ID")
		return
	}
	rule, err := mc.ruleRepo.GetRuleByID(uint(ruleID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rule: "+err.Error())
		return
	}
	if rule == nil || rule.ClubID != sc.clubID {
		responses.NotFound(c, "Rule")
		return
	}
	if err := mc.ruleRepo.DeleteRule(uint(ruleID)); err != nil {
		responses.InternalServerError(c, "Failed to delete rule: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rule deleted successfully", nil)
}
