package catalog

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/touchlinehq/touchline/internal/models"
)

// Seed upserts the system default catalog. Safe to run on every boot.
func Seed(db *gorm.DB) error {
	entries := []Entry{
		// Positions
		{Category: CategoryPositions, Key: "goalkeeper", Value: EntryValue{Name: "Goalkeeper"}, SortOrder: 1},
		{Category: CategoryPositions, Key: "full_back", Value: EntryValue{Name: "Full Back"}, SortOrder: 2},
		{Category: CategoryPositions, Key: "centre_back", Value: EntryValue{Name: "Centre Back"}, SortOrder: 3},
		{Category: CategoryPositions, Key: "defensive_midfielder", Value: EntryValue{Name: "Defensive Midfielder"}, SortOrder: 4},
		{Category: CategoryPositions, Key: "central_midfielder", Value: EntryValue{Name: "Central Midfielder"}, SortOrder: 5},
		{Category: CategoryPositions, Key: "attacking_midfielder", Value: EntryValue{Name: "Attacking Midfielder"}, SortOrder: 6},
		{Category: CategoryPositions, Key: "winger", Value: EntryValue{Name: "Winger"}, SortOrder: 7},
		{Category: CategoryPositions, Key: "striker", Value: EntryValue{Name: "Striker"}, SortOrder: 8},

		// In-possession attributes
		{Category: CategoryAttributesInPos, Key: "first_touch", Value: EntryValue{Name: "First Touch"}, SortOrder: 1},
		{Category: CategoryAttributesInPos, Key: "passing_range", Value: EntryValue{Name: "Passing Range"}, SortOrder: 2},
		{Category: CategoryAttributesInPos, Key: "receiving_under_pressure", Value: EntryValue{Name: "Receiving Under Pressure"}, SortOrder: 3},
		{Category: CategoryAttributesInPos, Key: "ball_carrying", Value: EntryValue{Name: "Ball Carrying"}, SortOrder: 4},
		{Category: CategoryAttributesInPos, Key: "one_v_one_attacking", Value: EntryValue{Name: "1v1 Attacking"}, SortOrder: 5},
		{Category: CategoryAttributesInPos, Key: "finishing", Value: EntryValue{Name: "Finishing"}, SortOrder: 6},
		{Category: CategoryAttributesInPos, Key: "crossing", Value: EntryValue{Name: "Crossing"}, SortOrder: 7},
		{Category: CategoryAttributesInPos, Key: "scanning", Value: EntryValue{Name: "Scanning", Description: "Checking shoulders before receiving", IsAdvanced: true}, SortOrder: 8},
		{Category: CategoryAttributesInPos, Key: "third_man_runs", Value: EntryValue{Name: "Third Man Runs", IsAdvanced: true}, SortOrder: 9},

		// Out-of-possession attributes
		{Category: CategoryAttributesOutPos, Key: "pressing", Value: EntryValue{Name: "Pressing"}, SortOrder: 1},
		{Category: CategoryAttributesOutPos, Key: "one_v_one_defending", Value: EntryValue{Name: "1v1 Defending"}, SortOrder: 2},
		{Category: CategoryAttributesOutPos, Key: "covering", Value: EntryValue{Name: "Covering"}, SortOrder: 3},
		{Category: CategoryAttributesOutPos, Key: "intercepting", Value: EntryValue{Name: "Intercepting"}, SortOrder: 4},
		{Category: CategoryAttributesOutPos, Key: "aerial_duels", Value: EntryValue{Name: "Aerial Duels"}, SortOrder: 5},
		{Category: CategoryAttributesOutPos, Key: "recovery_runs", Value: EntryValue{Name: "Recovery Runs"}, SortOrder: 6},
		{Category: CategoryAttributesOutPos, Key: "compactness", Value: EntryValue{Name: "Compactness", Description: "Holding distances between units", IsAdvanced: true}, SortOrder: 7},

		// Space options for session planning
		{Category: CategorySpaceOptions, Key: "full_pitch", Value: EntryValue{Name: "Full Pitch"}, SortOrder: 1},
		{Category: CategorySpaceOptions, Key: "half_pitch", Value: EntryValue{Name: "Half Pitch"}, SortOrder: 2},
		{Category: CategorySpaceOptions, Key: "third_pitch", Value: EntryValue{Name: "Third of a Pitch"}, SortOrder: 3},
		{Category: CategorySpaceOptions, Key: "grid_20x20", Value: EntryValue{Name: "20x20 Grid"}, SortOrder: 4},
		{Category: CategorySpaceOptions, Key: "grid_40x30", Value: EntryValue{Name: "40x30 Grid"}, SortOrder: 5},

		// Equipment options
		{Category: CategoryEquipment, Key: "balls", Value: EntryValue{Name: "Balls"}, SortOrder: 1},
		{Category: CategoryEquipment, Key: "cones", Value: EntryValue{Name: "Cones"}, SortOrder: 2},
		{Category: CategoryEquipment, Key: "bibs", Value: EntryValue{Name: "Bibs"}, SortOrder: 3},
		{Category: CategoryEquipment, Key: "mini_goals", Value: EntryValue{Name: "Mini Goals"}, SortOrder: 4},
		{Category: CategoryEquipment, Key: "full_goals", Value: EntryValue{Name: "Full-size Goals"}, SortOrder: 5},
		{Category: CategoryEquipment, Key: "mannequins", Value: EntryValue{Name: "Mannequins"}, SortOrder: 6},
		{Category: CategoryEquipment, Key: "poles", Value: EntryValue{Name: "Poles"}, SortOrder: 7},
	}

	for i := range entries {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "sort_order", "updated_at"}),
		}).Create(&entries[i]).Error
		if err != nil {
			return err
		}
	}

	defaults := []PositionDefault{
		{PositionKey: "goalkeeper", InPossession: models.StringSlice{"passing_range", "receiving_under_pressure"}, OutOfPossession: models.StringSlice{"covering", "one_v_one_defending"}},
		{PositionKey: "full_back", InPossession: models.StringSlice{"crossing", "ball_carrying", "passing_range"}, OutOfPossession: models.StringSlice{"one_v_one_defending", "recovery_runs", "covering"}},
		{PositionKey: "centre_back", InPossession: models.StringSlice{"passing_range", "receiving_under_pressure"}, OutOfPossession: models.StringSlice{"aerial_duels", "one_v_one_defending", "covering"}},
		{PositionKey: "defensive_midfielder", InPossession: models.StringSlice{"scanning", "passing_range", "receiving_under_pressure"}, OutOfPossession: models.StringSlice{"intercepting", "covering", "compactness"}},
		{PositionKey: "central_midfielder", InPossession: models.StringSlice{"scanning", "first_touch", "passing_range", "third_man_runs"}, OutOfPossession: models.StringSlice{"pressing", "intercepting", "recovery_runs"}},
		{PositionKey: "attacking_midfielder", InPossession: models.StringSlice{"first_touch", "one_v_one_attacking", "finishing"}, OutOfPossession: models.StringSlice{"pressing", "intercepting"}},
		{PositionKey: "winger", InPossession: models.StringSlice{"one_v_one_attacking", "crossing", "ball_carrying"}, OutOfPossession: models.StringSlice{"pressing", "recovery_runs"}},
		{PositionKey: "striker", InPossession: models.StringSlice{"finishing", "first_touch", "one_v_one_attacking"}, OutOfPossession: models.StringSlice{"pressing", "compactness"}},
	}

	for i := range defaults {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "position_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"in_possession", "out_of_possession", "updated_at"}),
		}).Create(&defaults[i]).Error
		if err != nil {
			return err
		}
	}
	return nil
}
