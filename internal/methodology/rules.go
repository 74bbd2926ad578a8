package methodology

import (
	"errors"

	"gorm.io/gorm"
)

// TrainingRule is a flat club-owned coaching principle. Not scoped per team
// and not versioned; plain CRUD.
type TrainingRule struct {
	gorm.Model
	ClubID      uint   `json:"club_id" gorm:"index;not null"`
	CoachID     uint   `json:"coach_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
}

// RuleRepository defines data operations for training methodology rules.
type RuleRepository interface {
	CreateRule(rule *TrainingRule) error
	GetRuleByID(id uint) (*TrainingRule, error)
	GetRulesByClubID(clubID uint) ([]TrainingRule, error)
	UpdateRule(rule *TrainingRule) error
	DeleteRule(id uint) error
}

type ruleRepository struct {
	db *gorm.DB
}

func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) CreateRule(rule *TrainingRule) error {
	return r.db.Create(rule).Error
}

func (r *ruleRepository) GetRuleByID(id uint) (*TrainingRule, error) {
	var rule TrainingRule
	if err := r.db.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (r *ruleRepository) GetRulesByClubID(clubID uint) ([]TrainingRule, error) {
	var rules []TrainingRule
	if err := r.db.Where("club_id = ?", clubID).Order("created_at asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ruleRepository) UpdateRule(rule *TrainingRule) error {
	return r.db.Save(rule).Error
}

func (r *ruleRepository) DeleteRule(id uint) error {
	return r.db.Delete(&TrainingRule{}, id).Error
}
