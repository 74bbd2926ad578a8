package session

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository defines data operations for training sessions and
// attendance.
type SessionRepository interface {
	CreateSession(s *TrainingSession) error
	GetSessionByID(id uint) (*TrainingSession, error)
	GetSessionsByTeamID(teamID uint, page, limit int) ([]TrainingSession, int64, error)
	UpdateSession(s *TrainingSession) error
	DeleteSession(id uint) error

	UpsertAttendance(entries []SessionAttendance) error
	GetAttendanceBySessionID(sessionID uint) ([]SessionAttendance, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(s *TrainingSession) error {
	return r.db.Create(s).Error
}

func (r *sessionRepository) GetSessionByID(id uint) (*TrainingSession, error) {
	var s TrainingSession
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) GetSessionsByTeamID(teamID uint, page, limit int) ([]TrainingSession, int64, error) {
	var sessions []TrainingSession
	var total int64

	query := r.db.Model(&TrainingSession{}).Where("team_id = ? AND is_deleted = ?", teamID, false)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("date desc").Offset(offset).Limit(limit).Find(&sessions).Error; err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *sessionRepository) UpdateSession(s *TrainingSession) error {
	return r.db.Save(s).Error
}

func (r *sessionRepository) DeleteSession(id uint) error {
	return r.db.Model(&TrainingSession{}).Where("id = ?", id).Update("is_deleted", true).Error
}

// UpsertAttendance writes the batch in one statement, replacing status and
// note on conflict so re-submitting a register is idempotent.
func (r *sessionRepository) UpsertAttendance(entries []SessionAttendance) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "note", "updated_at"}),
	}).Create(&entries).Error
}

func (r *sessionRepository) GetAttendanceBySessionID(sessionID uint) ([]SessionAttendance, error) {
	var entries []SessionAttendance
	if err := r.db.Where("session_id = ?", sessionID).Order("player_id asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
