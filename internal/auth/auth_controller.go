package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/touchlinehq/touchline/config"
	"github.com/touchlinehq/touchline/internal/middleware"
	"github.com/touchlinehq/touchline/internal/user"
	"github.com/touchlinehq/touchline/pkg/responses"
	"github.com/touchlinehq/touchline/pkg/token"
	pkgutils "github.com/touchlinehq/touchline/pkg/utils"
	"github.com/touchlinehq/touchline/utils"
)

// AuthController handles registration, login and session management.
type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

func NewAuthController(repo AuthRepository, appConfig *config.Config) *AuthController {
	return &AuthController{repo: repo, appConfig: appConfig}
}

func (ac *AuthController) issueTokens(u *user.User) (*AuthResponse, error) {
	role := ""
	if len(u.Roles) > 0 {
		role = u.Roles[0].Name
	}
	access, err := token.GenerateJWT(u.ID, role, ac.appConfig.JWT.AccessTokenSecret, ac.appConfig.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := pkgutils.GenerateRefreshToken(u.ID, ac.appConfig.JWT.RefreshTokenSecret, ac.appConfig.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return nil, err
	}
	if err := ac.repo.SaveRefreshToken(&user.RefreshToken{
		UserID:    u.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(time.Duration(ac.appConfig.JWT.RefreshTokenExpiryDays) * 24 * time.Hour),
	}); err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         FilterUserRecord(u),
	}, nil
}

// Register godoc
// @Summary Register a new coach account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	existing, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing account: "+err.Error())
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Email is already registered")
		return
	}
	existing, err = ac.repo.GetUserByUsername(req.Username)
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing account: "+err.Error())
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Username is already taken")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash password")
		return
	}

	u := user.User{
		Name:          req.Name,
		Username:      req.Username,
		Email:         strings.ToLower(req.Email),
		Password:      hash,
		Qualification: req.Qualification,
		Bio:           req.Bio,
		LastActive:    time.Now(),
	}
	if err := ac.repo.CreateUser(&u); err != nil {
		responses.InternalServerError(c, "Failed to create account: "+err.Error())
		return
	}
	if err := ac.repo.AssignRoleToUser(u.ID, "coach"); err != nil {
		responses.InternalServerError(c, "Failed to assign role: "+err.Error())
		return
	}

	created, err := ac.repo.GetUserByID(u.ID)
	if err != nil || created == nil {
		responses.InternalServerError(c, "Failed to reload account")
		return
	}
	resp, err := ac.issueTokens(created)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Account created successfully", resp)
}

// Login godoc
// @Summary Log in with email or username
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	var u *user.User
	var err error
	if strings.Contains(req.LoginIdentifier, "@") {
		u, err = ac.repo.GetUserByEmail(strings.ToLower(req.LoginIdentifier))
	} else {
		u, err = ac.repo.GetUserByUsername(req.LoginIdentifier)
	}
	if err != nil {
		responses.InternalServerError(c, "Failed to look up account: "+err.Error())
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	u.LastActive = time.Now()
	_ = ac.repo.UpdateUser(u)

	resp, err := ac.issueTokens(u)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged in successfully", resp)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	userID, err := pkgutils.VerifyRefreshToken(req.RefreshToken, ac.appConfig.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up refresh token: "+err.Error())
		return
	}
	if stored == nil || stored.UserID != userID {
		responses.Unauthorized(c, "Refresh token is revoked or unknown")
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil || u == nil {
		responses.Unauthorized(c, "Account no longer exists")
		return
	}

	// Rotate: the presented token is single-use.
	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		responses.InternalServerError(c, "Failed to rotate refresh token: "+err.Error())
		return
	}
	resp, err := ac.issueTokens(u)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Token refreshed", resp)
}

// GetProfile godoc
// @Summary Get the authenticated coach's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load profile: "+err.Error())
		return
	}
	if u == nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved", FilterUserRecord(u))
}

// UpdateProfile godoc
// @Summary Update the authenticated coach's profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/me [put]
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil || u == nil {
		responses.NotFound(c, "User")
		return
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Username != nil && *req.Username != u.Username {
		taken, err := ac.repo.GetUserByUsername(*req.Username)
		if err != nil {
			responses.InternalServerError(c, "Failed to check username: "+err.Error())
			return
		}
		if taken != nil {
			responses.SendError(c, http.StatusConflict, "Username is already taken")
			return
		}
		u.Username = *req.Username
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Qualification != nil {
		u.Qualification = *req.Qualification
	}

	if err := ac.repo.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Failed to update profile: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile updated", FilterUserRecord(u))
}

// ChangePassword godoc
// @Summary Change the authenticated coach's password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ChangePasswordRequest true "Password change data"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil || u == nil {
		responses.NotFound(c, "User")
		return
	}
	if !utils.CheckPassword(u.Password, req.OldPassword) {
		responses.Unauthorized(c, "Old password is incorrect")
		return
	}
	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash password")
		return
	}
	u.Password = hash
	if err := ac.repo.UpdateUser(u); err != nil {
		responses.InternalServerError(c, "Failed to update password: "+err.Error())
		return
	}
	// Force re-login everywhere after a password change.
	if err := ac.repo.InvalidateAllRefreshTokensForUser(userID); err != nil {
		responses.InternalServerError(c, "Failed to revoke sessions: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Password changed", nil)
}

// Logout godoc
// @Summary Log out, revoking the presented refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LogoutRequest true "Logout options"
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, err)
		return
	}

	if req.InvalidateAllSessions {
		if err := ac.repo.InvalidateAllRefreshTokensForUser(userID); err != nil {
			responses.InternalServerError(c, "Failed to revoke sessions: "+err.Error())
			return
		}
	} else if req.RefreshToken != "" {
		if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
			responses.InternalServerError(c, "Failed to revoke refresh token: "+err.Error())
			return
		}
	}
	responses.SendSuccess(c, http.StatusOK, "Logged out", nil)
}
