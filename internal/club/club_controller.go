package club

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/middleware"
	"github.com/touchlinehq/touchline/internal/models"
	"github.com/touchlinehq/touchline/pkg/responses"
)

// Onboarding step keys, in order. Each step's done-ness is computed from
// stored data so an interrupted flow is resumable (no hidden partial state).
const (
	StepProfile    = "profile"
	StepTeam       = "team"
	StepCoaches    = "coaches"
	StepFacilities = "facilities"
)

// ClubController handles club CRUD, membership and onboarding requests.
type ClubController struct {
	repo      ClubRepository
	appConfig *config.Config
}

func NewClubController(repo ClubRepository, appConfig *config.Config) *ClubController {
	return &ClubController{repo: repo, appConfig: appConfig}
}

func parseClubID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("club_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid club ID")
		return 0, false
	}
	return uint(id), true
}

// requireAdmin aborts with 403 unless the authenticated user administers the club.
func (cc *ClubController) requireAdmin(c *gin.Context, clubID uint) (uint, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return 0, false
	}
	isAdmin, err := cc.repo.IsClubAdmin(clubID, userID)
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

// CreateClub godoc
// @Summary Create a club
// @Description Creates a club with the authenticated coach as head coach.
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club body CreateClubRequest true "Club data"
// @Success 201 {object} responses.SuccessResponse{data=Club}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs [post]
func (cc *ClubController) CreateClub(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	newClub := Club{
		Name:        req.Name,
		Crest:       req.Crest,
		City:        req.City,
		Country:     req.Country,
		Philosophy:  req.Philosophy,
		CreatedByID: userID,
	}

	err = cc.repo.WithTransaction(func(repo ClubRepository) error {
		if err := repo.CreateClub(&newClub); err != nil {
			return err
		}
		return repo.AddMember(&ClubMember{
			ClubID:   newClub.ID,
			UserID:   userID,
			Role:     RoleHeadCoach,
			IsActive: true,
		})
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to create club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Club created successfully", newClub)
}

// GetClubByID godoc
// @Summary Get a club by ID
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=Club}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id} [get]
func (cc *ClubController) GetClubByID(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	club, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil || club.IsDeleted {
		responses.NotFound(c, "Club")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club retrieved successfully", club)
}

// GetMyClubs godoc
// @Summary List clubs the authenticated coach belongs to
// @Tags Clubs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]Club}
// @Security ApiKeyAuth
// @Router /users/me/clubs [get]
func (cc *ClubController) GetMyClubs(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	page, limit := parsePagination(c)
	clubs, total, err := cc.repo.GetClubsByUserID(userID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve clubs: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Clubs retrieved successfully", clubs, total, page, limit)
}

// UpdateClub godoc
// @Summary Update a club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param club body UpdateClubRequest true "Club fields"
// @Success 200 {object} responses.SuccessResponse{data=Club}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id} [put]
func (cc *ClubController) UpdateClub(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	if _, ok := cc.requireAdmin(c, clubID); !ok {
		return
	}
	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	club, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil || club.IsDeleted {
		responses.NotFound(c, "Club")
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Crest != nil {
		club.Crest = *req.Crest
	}
	if req.City != nil {
		club.City = *req.City
	}
	if req.Country != nil {
		club.Country = *req.Country
	}
	if req.Philosophy != nil {
		club.Philosophy = *req.Philosophy
	}

	if err := cc.repo.UpdateClub(club); err != nil {
		responses.InternalServerError(c, "Failed to update club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club updated successfully", club)
}

// DeleteClub godoc
// @Summary Soft-delete a club
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id} [delete]
func (cc *ClubController) DeleteClub(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	if _, ok := cc.requireAdmin(c, clubID); !ok {
		return
	}
	if err := cc.repo.DeleteClub(clubID); err != nil {
		responses.InternalServerError(c, "Failed to delete club: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Club deleted successfully", nil)
}

// --- Membership ---

// AddMember godoc
// @Summary Add a coach to the club
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param member body AddMemberRequest true "Member data"
// @Success 201 {object} responses.SuccessResponse{data=ClubMember}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/members [post]
func (cc *ClubController) AddMember(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	if _, ok := cc.requireAdmin(c, clubID); !ok {
		return
	}
	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	role := req.Role
	if role == "" {
		role = RoleCoach
	}
	member := ClubMember{
		ClubID:   clubID,
		UserID:   req.UserID,
		Role:     role,
		IsActive: true,
	}
	if err := cc.repo.AddMember(&member); err != nil {
		responses.InternalServerError(c, "Failed to add member: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Member added successfully", member)
}

// GetMembers godoc
// @Summary List club members
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} responses.PaginatedResponse{data=[]ClubMember}
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/members [get]
func (cc *ClubController) GetMembers(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	page, limit := parsePagination(c)
	members, total, err := cc.repo.GetMembers(clubID, page, limit)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve members: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Members retrieved successfully", members, total, page, limit)
}

// UpdateMemberRole godoc
// @Summary Change a member's club role
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param user_id path uint true "User ID"
// @Param body body UpdateMemberRoleRequest true "New role"
// @Success 200 {object} responses.SuccessResponse{data=ClubMember}
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/members/{user_id}/role [put]
func (cc *ClubController) UpdateMemberRole(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	if _, ok := cc.requireAdmin(c, clubID); !ok {
		return
	}
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	var req UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	member, err := cc.repo.GetMember(clubID, uint(targetID))
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve member: "+err.Error())
		return
	}
	if member == nil || !member.IsActive {
		responses.NotFound(c, "Member")
		return
	}
	member.Role = req.Role
	if err := cc.repo.UpdateMember(member); err != nil {
		responses.InternalServerError(c, "Failed to update member: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Member role updated", member)
}

// RemoveMember godoc
// @Summary Remove a coach from the club
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param user_id path uint true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/members/{user_id} [delete]
func (cc *ClubController) RemoveMember(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	if _, ok := cc.requireAdmin(c, clubID); !ok {
		return
	}
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid user ID")
		return
	}
	if err := cc.repo.RemoveMember(clubID, uint(targetID)); err != nil {
		responses.InternalServerError(c, "Failed to remove member: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Member removed", nil)
}

// --- Facilities ---

// SaveFacilities godoc
// @Summary Save the club's training facilities
// @Tags Clubs
// @Accept json
// @Produce json
// @Param club_id path uint true "Club ID"
// @Param body body SaveFacilitiesRequest true "Facilities"
// @Success 200 {object} responses.SuccessResponse{data=ClubFacilities}
// @Failure 403 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/facilities [put]
func (cc *ClubController) SaveFacilities(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	if _, ok := cc.requireAdmin(c, clubID); !ok {
		return
	}
	var req SaveFacilitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}
	facilities := ClubFacilities{
		ClubID:    clubID,
		Pitches:   models.StringSlice(req.Pitches),
		Equipment: models.StringSlice(req.Equipment),
		Notes:     req.Notes,
	}
	if err := cc.repo.SaveFacilities(&facilities); err != nil {
		responses.InternalServerError(c, "Failed to save facilities: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Facilities saved", facilities)
}

// GetFacilities godoc
// @Summary Get the club's training facilities
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=ClubFacilities}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/facilities [get]
func (cc *ClubController) GetFacilities(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	facilities, err := cc.repo.GetFacilities(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve facilities: "+err.Error())
		return
	}
	if facilities == nil {
		responses.NotFound(c, "Facilities")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Facilities retrieved", facilities)
}

// --- Onboarding ---

func (cc *ClubController) onboardingStatus(club *Club) (*OnboardingStatus, error) {
	teams, err := cc.repo.CountTeams(club.ID)
	if err != nil {
		return nil, err
	}
	coaches, err := cc.repo.CountActiveCoaches(club.ID)
	if err != nil {
		return nil, err
	}
	facilities, err := cc.repo.GetFacilities(club.ID)
	if err != nil {
		return nil, err
	}

	status := &OnboardingStatus{
		Steps: []OnboardingStep{
			{Key: StepProfile, Done: club.Name != "" && club.Philosophy != ""},
			{Key: StepTeam, Done: teams > 0},
			{Key: StepCoaches, Done: coaches > 0},
			{Key: StepFacilities, Done: facilities != nil},
		},
		Complete: club.OnboardingComplete,
	}
	return status, nil
}

// GetOnboardingStatus godoc
// @Summary Report per-step onboarding progress for a club
// @Description Each step is recomputed from stored data, so a flow that
// failed halfway shows exactly which steps still need doing.
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=OnboardingStatus}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/onboarding [get]
func (cc *ClubController) GetOnboardingStatus(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	club, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil || club.IsDeleted {
		responses.NotFound(c, "Club")
		return
	}
	status, err := cc.onboardingStatus(club)
	if err != nil {
		responses.InternalServerError(c, "Failed to compute onboarding status: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Onboarding status", status)
}

// CompleteOnboarding godoc
// @Summary Mark club onboarding complete
// @Description Refuses until every setup step (profile, team, coaches,
// facilities) is done, so the flow cannot silently finish half-configured.
// @Tags Clubs
// @Produce json
// @Param club_id path uint true "Club ID"
// @Success 200 {object} responses.SuccessResponse{data=OnboardingStatus}
// @Failure 409 {object} responses.ErrorResponse "A setup step is incomplete"
// @Security ApiKeyAuth
// @Router /clubs/{club_id}/onboarding/complete [post]
func (cc *ClubController) CompleteOnboarding(c *gin.Context) {
	clubID, ok := parseClubID(c)
	if !ok {
		return
	}
	if _, ok := cc.requireAdmin(c, clubID); !ok {
		return
	}
	club, err := cc.repo.GetClubByID(clubID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve club: "+err.Error())
		return
	}
	if club == nil || club.IsDeleted {
		responses.NotFound(c, "Club")
		return
	}
	status, err := cc.onboardingStatus(club)
	if err != nil {
		responses.InternalServerError(c, "Failed to compute onboarding status: "+err.Error())
		return
	}
	for _, step := range status.Steps {
		if !step.Done {
			responses.SendError(c, http.StatusConflict, "Onboarding step '"+step.Key+"' is not complete")
			return
		}
	}
	club.OnboardingComplete = true
	if err := cc.repo.UpdateClub(club); err != nil {
		responses.InternalServerError(c, "Failed to mark onboarding complete: "+err.Error())
		return
	}
	status.Complete = true
	responses.SendSuccess(c, http.StatusOK, "Onboarding complete", status)
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
