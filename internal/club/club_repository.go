package club

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClubRepository defines data operations for clubs, membership and facilities.
type ClubRepository interface {
	CreateClub(club *Club) error
	GetClubByID(id uint) (*Club, error)
	GetClubsByUserID(userID uint, page, limit int) ([]Club, int64, error)
	UpdateClub(club *Club) error
	DeleteClub(id uint) error

	AddMember(member *ClubMember) error
	GetMember(clubID, userID uint) (*ClubMember, error)
	GetMembers(clubID uint, page, limit int) ([]ClubMember, int64, error)
	UpdateMember(member *ClubMember) error
	RemoveMember(clubID, userID uint) error
	IsClubAdmin(clubID, userID uint) (bool, error)
	CountActiveCoaches(clubID uint) (int64, error)

	SaveFacilities(facilities *ClubFacilities) error
	GetFacilities(clubID uint) (*ClubFacilities, error)

	CountTeams(clubID uint) (int64, error)

	WithTransaction(txFunc func(ClubRepository) error) error
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) CreateClub(club *Club) error {
	return r.db.Create(club).Error
}

func (r *clubRepository) GetClubByID(id uint) (*Club, error) {
	var club Club
	if err := r.db.First(&club, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetClubsByUserID(userID uint, page, limit int) ([]Club, int64, error) {
	var clubs []Club
	var total int64

	query := r.db.Model(&Club{}).
		Joins("JOIN club_members ON club_members.club_id = clubs.id").
		Where("club_members.user_id = ? AND club_members.is_active = ? AND clubs.is_deleted = ?", userID, true, false)

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("clubs.created_at DESC").Find(&clubs).Error; err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) UpdateClub(club *Club) error {
	return r.db.Save(club).Error
}

func (r *clubRepository) DeleteClub(id uint) error {
	return r.db.Model(&Club{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (r *clubRepository) AddMember(member *ClubMember) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "is_active", "updated_at"}),
	}).Create(member).Error
}

func (r *clubRepository) GetMember(clubID, userID uint) (*ClubMember, error) {
	var member ClubMember
	if err := r.db.Where("club_id = ? AND user_id = ?", clubID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *clubRepository) GetMembers(clubID uint, page, limit int) ([]ClubMember, int64, error) {
	var members []ClubMember
	var total int64
	query := r.db.Model(&ClubMember{}).Where("club_id = ? AND is_active = ?", clubID, true)
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at asc").Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *clubRepository) UpdateMember(member *ClubMember) error {
	return r.db.Save(member).Error
}

func (r *clubRepository) RemoveMember(clubID, userID uint) error {
	return r.db.Model(&ClubMember{}).Where("club_id = ? AND user_id = ?", clubID, userID).Update("is_active", false).Error
}

// IsClubAdmin reports whether the user created the club or holds the
// head-coach role on it.
func (r *clubRepository) IsClubAdmin(clubID, userID uint) (bool, error) {
	var club Club
	if err := r.db.Select("created_by_id").First(&club, clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if club.CreatedByID == userID {
		return true, nil
	}
	var count int64
	err := r.db.Model(&ClubMember{}).
		Where("club_id = ? AND user_id = ? AND role = ? AND is_active = ?", clubID, userID, RoleHeadCoach, true).
		Count(&count).Error
	return count > 0, err
}

func (r *clubRepository) CountActiveCoaches(clubID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ClubMember{}).Where("club_id = ? AND is_active = ?", clubID, true).Count(&count).Error
	return count, err
}

func (r *clubRepository) SaveFacilities(facilities *ClubFacilities) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"pitches", "equipment", "notes", "updated_at"}),
	}).Create(facilities).Error
}

func (r *clubRepository) GetFacilities(clubID uint) (*ClubFacilities, error) {
	var facilities ClubFacilities
	if err := r.db.Where("club_id = ?", clubID).First(&facilities).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &facilities, nil
}

// CountTeams counts live teams via the teams table. The club package owns the
// onboarding check, so the query lives here rather than in the team repo.
func (r *clubRepository) CountTeams(clubID uint) (int64, error) {
	var count int64
	err := r.db.Table("teams").Where("club_id = ? AND is_deleted = ? AND deleted_at IS NULL", clubID, false).Count(&count).Error
	return count, err
}

func (r *clubRepository) WithTransaction(txFunc func(ClubRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return txFunc(&clubRepository{db: tx})
	})
}
