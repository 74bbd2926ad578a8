package methodology

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConfigKind names one scoped methodology configuration. Game-model zones and
// playing-methodology zones are separate kinds with separate records.
type ConfigKind string

const (
	KindGameModel          ConfigKind = "game_model"
	KindPlayingMethodology ConfigKind = "playing_methodology"
	KindPositionalProfiles ConfigKind = "positional_profiles"
	KindTrainingSyllabus   ConfigKind = "training_syllabus"
)

// ZoneKinds reports whether the kind's payload is a ZoneSet.
func (k ConfigKind) IsZoneKind() bool {
	return k == KindGameModel || k == KindPlayingMethodology
}

// ParseConfigKind validates a kind string from a URL.
func ParseConfigKind(s string) (ConfigKind, error) {
	switch ConfigKind(s) {
	case KindGameModel, KindPlayingMethodology, KindPositionalProfiles, KindTrainingSyllabus:
		return ConfigKind(s), nil
	}
	return "", fmt.Errorf("unknown methodology kind %q", s)
}

// MethodologyConfig is one stored configuration record. A NULL team_id is the
// club-level default; a set team_id is that team's override. At most one row
// exists per (kind, club, team) scope.
type MethodologyConfig struct {
	gorm.Model
	Kind        ConfigKind     `json:"kind" gorm:"index:idx_methodology_scope;not null"`
	ClubID      uint           `json:"club_id" gorm:"index:idx_methodology_scope;not null"`
	TeamID      *uint          `json:"team_id" gorm:"index:idx_methodology_scope"`
	UpdatedByID uint           `json:"updated_by_id"`
	Payload     datatypes.JSON `json:"payload" gorm:"type:jsonb;not null"`
}

// ConfigStore is the persistence boundary for scoped methodology records.
// Put is a full replace with last-write-wins semantics: concurrent edits to
// the same scope are not detected, the later write stands.
type ConfigStore interface {
	Get(kind ConfigKind, clubID uint, teamID *uint) (*MethodologyConfig, error)
	Put(kind ConfigKind, clubID uint, teamID *uint, actorID uint, payload json.RawMessage) error
	Clear(kind ConfigKind, clubID uint, teamID *uint) error
}

type gormConfigStore struct {
	db *gorm.DB
}

func NewConfigStore(db *gorm.DB) ConfigStore {
	return &gormConfigStore{db: db}
}

func scopeQuery(db *gorm.DB, kind ConfigKind, clubID uint, teamID *uint) *gorm.DB {
	q := db.Where("kind = ? AND club_id = ?", kind, clubID)
	if teamID == nil {
		return q.Where("team_id IS NULL")
	}
	return q.Where("team_id = ?", *teamID)
}

func (s *gormConfigStore) Get(kind ConfigKind, clubID uint, teamID *uint) (*MethodologyConfig, error) {
	var record MethodologyConfig
	err := scopeQuery(s.db, kind, clubID, teamID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Put upserts the single record for the scope. The read-then-write is not
// guarded by a version token; see the interface contract.
func (s *gormConfigStore) Put(kind ConfigKind, clubID uint, teamID *uint, actorID uint, payload json.RawMessage) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var record MethodologyConfig
		err := scopeQuery(tx, kind, clubID, teamID).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = MethodologyConfig{
				Kind:        kind,
				ClubID:      clubID,
				TeamID:      teamID,
				UpdatedByID: actorID,
				Payload:     datatypes.JSON(payload),
			}
			return tx.Create(&record).Error
		}
		if err != nil {
			return err
		}
		record.UpdatedByID = actorID
		record.Payload = datatypes.JSON(payload)
		return tx.Save(&record).Error
	})
}

func (s *gormConfigStore) Clear(kind ConfigKind, clubID uint, teamID *uint) error {
	return scopeQuery(s.db, kind, clubID, teamID).Delete(&MethodologyConfig{}).Error
}
