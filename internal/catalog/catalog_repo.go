package catalog

import (
	"errors"

	"gorm.io/gorm"
)

// CatalogRepository is the read-only system-default catalog boundary.
type CatalogRepository interface {
	ListByCategory(category string) ([]Entry, error)
	GetEntry(category, key string) (*Entry, error)
	GetPositionDefault(positionKey string) (*PositionDefault, error)
	ListPositionDefaults() ([]PositionDefault, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListByCategory(category string) ([]Entry, error) {
	var entries []Entry
	err := r.db.Where("category = ?", category).Order("sort_order asc").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *catalogRepository) GetEntry(category, key string) (*Entry, error) {
	var entry Entry
	if err := r.db.Where("category = ? AND key = ?", category, key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *catalogRepository) GetPositionDefault(positionKey string) (*PositionDefault, error) {
	var def PositionDefault
	if err := r.db.Where("position_key = ?", positionKey).First(&def).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

func (r *catalogRepository) ListPositionDefaults() ([]PositionDefault, error) {
	var defs []PositionDefault
	if err := r.db.Order("position_key asc").Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}
