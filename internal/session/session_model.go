package session

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/internal/methodology"
	"github.com/touchlinehq/touchline/internal/models"
)

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// TrainingSession is one planned (or delivered) session for a team. Theme is
// a snapshot of the zone block chosen at planning time; PracticeBlocks is the
// ordered practice plan as a JSON document, shaped by the frontend and the
// assistant rather than by relational structure.
type TrainingSession struct {
	gorm.Model
	TeamID          uint               `json:"team_id" gorm:"index;not null"`
	CreatedByID     uint               `json:"created_by_id" gorm:"not null"`
	Title           string             `json:"title" gorm:"not null"`
	Objective       string             `json:"objective" gorm:"type:text"`
	Date            time.Time          `json:"date" gorm:"index;not null"`
	DurationMinutes int                `json:"duration_minutes" gorm:"not null"`
	Space           string             `json:"space"`
	Equipment       models.StringSlice `json:"equipment" gorm:"type:jsonb"`
	Theme           datatypes.JSON     `json:"theme" gorm:"type:jsonb"`
	PracticeBlocks  datatypes.JSON     `json:"practice_blocks" gorm:"type:jsonb"`
	Notes           string             `json:"notes" gorm:"type:text"`
	IsDeleted       bool               `json:"is_deleted" gorm:"default:false"`
}

// SessionAttendance records one player's attendance for one session.
type SessionAttendance struct {
	gorm.Model
	SessionID uint   `json:"session_id" gorm:"uniqueIndex:idx_session_player;not null"`
	PlayerID  uint   `json:"player_id" gorm:"uniqueIndex:idx_session_player;not null"`
	Status    string `json:"status" gorm:"not null"`
	Note      string `json:"note"`
}

// --- DTOs ---

type CreateSessionRequest struct {
	Title           string                      `json:"title" binding:"required,min=1,max=200"`
	Objective       string                      `json:"objective" binding:"max=5000"`
	Date            time.Time                   `json:"date" binding:"required"`
	DurationMinutes int                         `json:"duration_minutes" binding:"required,min=15,max=240"`
	Space           string                      `json:"space"`
	Equipment       []string                    `json:"equipment"`
	Theme           *methodology.ThemeSelection `json:"theme"`
	PracticeBlocks  datatypes.JSON              `json:"practice_blocks"`
	Notes           string                      `json:"notes" binding:"max=5000"`
}

type UpdateSessionRequest struct {
	Title           *string                     `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Objective       *string                     `json:"objective,omitempty" binding:"omitempty,max=5000"`
	Date            *time.Time                  `json:"date,omitempty"`
	DurationMinutes *int                        `json:"duration_minutes,omitempty" binding:"omitempty,min=15,max=240"`
	Space           *string                     `json:"space,omitempty"`
	Equipment       []string                    `json:"equipment,omitempty"`
	Theme           *methodology.ThemeSelection `json:"theme,omitempty"`
	PracticeBlocks  datatypes.JSON              `json:"practice_blocks,omitempty"`
	Notes           *string                     `json:"notes,omitempty" binding:"omitempty,max=5000"`
}

type AttendanceEntry struct {
	PlayerID uint   `json:"player_id" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=present absent late"`
	Note     string `json:"note" binding:"max=500"`
}

type RecordAttendanceRequest struct {
	Entries []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

type AssistantTurn struct {
	Role    string `json:"role" binding:"required,oneof=coach assistant"`
	Content string `json:"content" binding:"required,max=4000"`
}

type AssistantRequest struct {
	Message string          `json:"message" binding:"required,min=1,max=4000"`
	History []AssistantTurn `json:"history,omitempty" binding:"omitempty,max=20,dive"`
}
