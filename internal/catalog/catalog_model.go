package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/touchlinehq/touchline/internal/models"
)

// Catalog categories served to selection menus.
const (
	CategoryPositions       = "positions"
	CategoryAttributesInPos = "attributes_in_possession"
	CategoryAttributesOutPos = "attributes_out_of_possession"
	CategorySpaceOptions    = "space_options"
	CategoryEquipment       = "equipment_options"
)

// EntryValue is the display payload of a catalog entry.
type EntryValue struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsAdvanced  bool   `json:"is_advanced,omitempty"`
}

func (v EntryValue) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *EntryValue) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("EntryValue: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, v)
}

// Entry is one row of the read-only system default catalog. Entries are
// keyed (category, key) and returned in SortOrder.
type Entry struct {
	gorm.Model
	Category  string     `json:"category" gorm:"index:idx_catalog_category_key,unique;not null"`
	Key       string     `json:"key" gorm:"index:idx_catalog_category_key,unique;not null"`
	Value     EntryValue `json:"value" gorm:"type:jsonb;not null"`
	SortOrder int        `json:"sort_order" gorm:"not null;default:0"`
}

// PositionDefault holds the system-default attribute keys for a position.
// Activating a positional profile with no club-specific data inherits these.
type PositionDefault struct {
	gorm.Model
	PositionKey     string             `json:"position_key" gorm:"uniqueIndex;not null"`
	InPossession    models.StringSlice `json:"in_possession" gorm:"type:jsonb"`
	OutOfPossession models.StringSlice `json:"out_of_possession" gorm:"type:jsonb"`
}
