package methodology

import (
	"fmt"

	"github.com/google/uuid"
)

// Possession-state tags for theme selections.
const (
	BlockInPossession    = "in_possession"
	BlockOutOfPossession = "out_of_possession"
)

// ThemeSelection is a denormalized pointer into a ZoneSet taken at assignment
// time. It is a snapshot, not a live foreign key: editing or deleting a zone
// later leaves historical syllabus entries intact.
type ThemeSelection struct {
	ZoneID    string `json:"zone_id"`
	ZoneName  string `json:"zone_name"`
	BlockType string `json:"block_type"`
	BlockID   string `json:"block_id"`
	BlockName string `json:"block_name"`
}

// SyllabusDay maps one day of a week (0 = Monday .. 6 = Sunday) to an
// optional theme plus free-text comments.
type SyllabusDay struct {
	DayOfWeek int             `json:"day_of_week"`
	Theme     *ThemeSelection `json:"theme"`
	Comments  *string         `json:"comments"`
}

// SyllabusWeek holds 7 days. Order is dense ascending from 1 across the
// syllabus.
type SyllabusWeek struct {
	ID    string        `json:"id"`
	Order int           `json:"order"`
	Days  []SyllabusDay `json:"days"`
}

// TrainingSyllabus is the week-by-week training plan stored per scope.
type TrainingSyllabus struct {
	Weeks []SyllabusWeek `json:"weeks"`
}

func emptyWeekDays() []SyllabusDay {
	days := make([]SyllabusDay, 7)
	for i := 0; i < 7; i++ {
		days[i] = SyllabusDay{DayOfWeek: i}
	}
	return days
}

// DefaultSyllabus produces one week (order=1) with 7 empty days.
func DefaultSyllabus() TrainingSyllabus {
	return TrainingSyllabus{
		Weeks: []SyllabusWeek{{
			ID:    uuid.NewString(),
			Order: 1,
			Days:  emptyWeekDays(),
		}},
	}
}

// AddWeek appends a week with order = max(order)+1 and 7 empty days.
func (s *TrainingSyllabus) AddWeek() *SyllabusWeek {
	maxOrder := 0
	for _, w := range s.Weeks {
		if w.Order > maxOrder {
			maxOrder = w.Order
		}
	}
	s.Weeks = append(s.Weeks, SyllabusWeek{
		ID:    uuid.NewString(),
		Order: maxOrder + 1,
		Days:  emptyWeekDays(),
	})
	return &s.Weeks[len(s.Weeks)-1]
}

// renumberWeeks restores dense ascending order from 1, keeping current order.
func (s *TrainingSyllabus) renumberWeeks() {
	for i := range s.Weeks {
		s.Weeks[i].Order = i + 1
	}
}

// RemoveWeek removes the identified week and renumbers the remainder. A
// syllabus always keeps at least one week.
func (s *TrainingSyllabus) RemoveWeek(weekID string) error {
	if len(s.Weeks) <= 1 {
		return fmt.Errorf("a syllabus must keep at least one week")
	}
	idx := -1
	for i, w := range s.Weeks {
		if w.ID == weekID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("no syllabus week with id %s", weekID)
	}
	s.Weeks = append(s.Weeks[:idx], s.Weeks[idx+1:]...)
	s.renumberWeeks()
	return nil
}

// ReorderWeeks persists a caller-supplied full reordering. The ID list must
// be a permutation of the current weeks; the model does not compute the
// reorder itself.
func (s *TrainingSyllabus) ReorderWeeks(orderedIDs []string) error {
	if len(orderedIDs) != len(s.Weeks) {
		return fmt.Errorf("reorder must list all %d weeks, got %d", len(s.Weeks), len(orderedIDs))
	}
	byID := make(map[string]SyllabusWeek, len(s.Weeks))
	for _, w := range s.Weeks {
		byID[w.ID] = w
	}
	reordered := make([]SyllabusWeek, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		w, ok := byID[id]
		if !ok {
			return fmt.Errorf("no syllabus week with id %s", id)
		}
		delete(byID, id)
		reordered = append(reordered, w)
	}
	s.Weeks = reordered
	s.renumberWeeks()
	return nil
}

// SetDayTheme replaces one day's theme/comments pair in the identified week.
// Matching is by dayOfWeek; a week never holds two entries for the same day.
func (s *TrainingSyllabus) SetDayTheme(weekID string, dayOfWeek int, theme *ThemeSelection, comments *string) error {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("day of week must be 0..6, got %d", dayOfWeek)
	}
	if theme != nil && theme.BlockType != BlockInPossession && theme.BlockType != BlockOutOfPossession {
		return fmt.Errorf("unknown block type %q", theme.BlockType)
	}
	for wi := range s.Weeks {
		if s.Weeks[wi].ID != weekID {
			continue
		}
		week := &s.Weeks[wi]
		for di := range week.Days {
			if week.Days[di].DayOfWeek == dayOfWeek {
				week.Days[di].Theme = theme
				week.Days[di].Comments = comments
				return nil
			}
		}
		week.Days = append(week.Days, SyllabusDay{DayOfWeek: dayOfWeek, Theme: theme, Comments: comments})
		return nil
	}
	return fmt.Errorf("no syllabus week with id %s", weekID)
}
