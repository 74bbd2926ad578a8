package team

import (
	"gorm.io/gorm"
)

// Match formats a team can be registered for.
const (
	Format5v5   = "5v5"
	Format7v7   = "7v7"
	Format9v9   = "9v9"
	Format11v11 = "11v11"
)

// Team is a roster + schedule unit belonging to a club. A team may hold its
// own override of any club-level methodology configuration.
type Team struct {
	gorm.Model
	ClubID      uint   `json:"club_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	AgeGroup    string `json:"age_group"` // e.g. "U12", "U15", "Senior"
	MatchFormat string `json:"match_format" gorm:"default:'11v11'"`
	CreatedByID uint   `json:"created_by_id" gorm:"index"`
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false"`
}

// Player is a roster entry. Players are records owned by the team, not
// login accounts.
type Player struct {
	gorm.Model
	TeamID      uint   `json:"team_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	PositionKey string `json:"position_key" gorm:"index"` // key into the positions catalog
	SquadNumber int    `json:"squad_number"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	Notes       string `json:"notes" gorm:"type:text"`
}

// --- DTOs ---

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	AgeGroup    string `json:"age_group" binding:"max=20"`
	MatchFormat string `json:"match_format" binding:"omitempty,oneof=5v5 7v7 9v9 11v11"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	AgeGroup    *string `json:"age_group,omitempty" binding:"omitempty,max=20"`
	MatchFormat *string `json:"match_format,omitempty" binding:"omitempty,oneof=5v5 7v7 9v9 11v11"`
}

type CreatePlayerRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	PositionKey string `json:"position_key"`
	SquadNumber int    `json:"squad_number" binding:"gte=0,lte=99"`
	Notes       string `json:"notes" binding:"max=2000"`
}

type UpdatePlayerRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	PositionKey *string `json:"position_key,omitempty"`
	SquadNumber *int    `json:"squad_number,omitempty" binding:"omitempty,gte=0,lte=99"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Notes       *string `json:"notes,omitempty" binding:"omitempty,max=2000"`
}
