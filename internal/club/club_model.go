package club

import (
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/internal/models"
)

const (
	RoleHeadCoach = "head_coach"
	RoleCoach     = "coach"
)

// Club is the top-level tenant. Every methodology record, team and session
// is owned by exactly one club.
type Club struct {
	gorm.Model
	Name               string `json:"name" gorm:"not null;index"`
	Crest              string `json:"crest"`
	City               string `json:"city"`
	Country            string `json:"country"`
	Philosophy         string `json:"philosophy" gorm:"type:text"`
	CreatedByID        uint   `json:"created_by_id" gorm:"index"`
	OnboardingComplete bool   `json:"onboarding_complete" gorm:"default:false"`
	IsDeleted          bool   `json:"is_deleted" gorm:"default:false"`
}

// ClubMember links a coach account to a club with a club-level role.
type ClubMember struct {
	gorm.Model
	ClubID   uint   `json:"club_id" gorm:"index:idx_club_user,unique"`
	UserID   uint   `json:"user_id" gorm:"index:idx_club_user,unique"`
	Role     string `json:"role" gorm:"default:'coach'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// ClubFacilities records the training facilities available to a club. One row
// per club.
type ClubFacilities struct {
	gorm.Model
	ClubID    uint               `json:"club_id" gorm:"uniqueIndex;not null"`
	Pitches   models.StringSlice `json:"pitches" gorm:"type:jsonb"`
	Equipment models.StringSlice `json:"equipment" gorm:"type:jsonb"`
	Notes     string             `json:"notes" gorm:"type:text"`
}

// --- DTOs ---

type CreateClubRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Crest      string `json:"crest"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Philosophy string `json:"philosophy" binding:"max=5000"`
}

type UpdateClubRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Crest      *string `json:"crest,omitempty"`
	City       *string `json:"city,omitempty"`
	Country    *string `json:"country,omitempty"`
	Philosophy *string `json:"philosophy,omitempty" binding:"omitempty,max=5000"`
}

type AddMemberRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"omitempty,oneof=head_coach coach"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=head_coach coach"`
}

type SaveFacilitiesRequest struct {
	Pitches   []string `json:"pitches"`
	Equipment []string `json:"equipment"`
	Notes     string   `json:"notes" binding:"max=2000"`
}

// OnboardingStep reports one step of the club setup flow. Done-ness is
// computed from stored data, so a flow interrupted by a failed step resumes
// exactly where it stopped.
type OnboardingStep struct {
	Key  string `json:"key"`
	Done bool   `json:"done"`
}

type OnboardingStatus struct {
	Steps    []OnboardingStep `json:"steps"`
	Complete bool             `json:"complete"`
}
