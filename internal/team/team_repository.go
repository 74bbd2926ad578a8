package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines data operations for teams and rosters.
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamsByClubID(clubID uint, page, limit int) ([]Team, int64, error)
	UpdateTeam(team *Team) error
	DeleteTeam(id uint) error

	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayersByTeamID(teamID uint, page, limit int) ([]Player, int64, error)
	UpdatePlayer(player *Player) error
	RemovePlayer(id uint) error
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamsByClubID(clubID uint, page, limit int) ([]Team, int64, error) {
	var teams []Team
	var total int64
	query := r.db.Model(&Team{}).Where("club_id = ? AND is_deleted = ?", clubID, false)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Model(&Team{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (r *teamRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *teamRepository) GetPlayerByID(id uint) (*Player, error) {
	var player Player
	if err := r.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *teamRepository) GetPlayersByTeamID(teamID uint, page, limit int) ([]Player, int64, error) {
	var players []Player
	var total int64
	query := r.db.Model(&Player{}).Where("team_id = ? AND is_active = ?", teamID, true)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("squad_number asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *teamRepository) UpdatePlayer(player *Player) error {
	return r.db.Save(player).Error
}

func (r *teamRepository) RemovePlayer(id uint) error {
	return r.db.Model(&Player{}).Where("id = ?", id).Update("is_active", false).Error
}
