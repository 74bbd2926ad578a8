package methodology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSyllabus(t *testing.T) {
	s := DefaultSyllabus()
	require.Len(t, s.Weeks, 1)
	assert.Equal(t, 1, s.Weeks[0].Order)
	require.Len(t, s.Weeks[0].Days, 7)
	for i, d := range s.Weeks[0].Days {
		assert.Equal(t, i, d.DayOfWeek)
		assert.Nil(t, d.Theme)
	}
}

func TestAddWeekAppendsAfterMaxOrder(t *testing.T) {
	s := DefaultSyllabus()
	w := s.AddWeek()
	assert.Equal(t, 2, w.Order)
	assert.Len(t, w.Days, 7)
	assert.Len(t, s.Weeks, 2)
}

func TestRemoveWeekRenumbers(t *testing.T) {
	s := DefaultSyllabus()
	s.AddWeek()
	s.AddWeek()
	removed := s.Weeks[1].ID

	require.NoError(t, s.RemoveWeek(removed))
	require.Len(t, s.Weeks, 2)
	for i, w := range s.Weeks {
		assert.Equal(t, i+1, w.Order)
		assert.NotEqual(t, removed, w.ID)
	}
}

func TestRemoveLastWeekRejected(t *testing.T) {
	s := DefaultSyllabus()
	err := s.RemoveWeek(s.Weeks[0].ID)
	assert.Error(t, err)
	assert.Len(t, s.Weeks, 1)
}

func TestRemoveUnknownWeek(t *testing.T) {
	s := DefaultSyllabus()
	s.AddWeek()
	assert.Error(t, s.RemoveWeek("nope"))
}

func TestReorderWeeks(t *testing.T) {
	s := DefaultSyllabus()
	s.AddWeek()
	s.AddWeek()
	a, b, c := s.Weeks[0].ID, s.Weeks[1].ID, s.Weeks[2].ID

	require.NoError(t, s.ReorderWeeks([]string{c, a, b}))
	assert.Equal(t, []string{c, a, b}, []string{s.Weeks[0].ID, s.Weeks[1].ID, s.Weeks[2].ID})
	for i, w := range s.Weeks {
		assert.Equal(t, i+1, w.Order)
	}
}

func TestReorderWeeksRejectsPartialOrUnknownLists(t *testing.T) {
	s := DefaultSyllabus()
	s.AddWeek()
	a := s.Weeks[0].ID

	assert.Error(t, s.ReorderWeeks([]string{a}))
	assert.Error(t, s.ReorderWeeks([]string{a, "nope"}))
	// A duplicated ID is not a permutation either.
	assert.Error(t, s.ReorderWeeks([]string{a, a}))
}

func TestSetDayThemeReplacesByDayOfWeek(t *testing.T) {
	s := DefaultSyllabus()
	weekID := s.Weeks[0].ID
	theme := &ThemeSelection{
		ZoneID:    "z1",
		ZoneName:  "Defensive Third",
		BlockType: BlockInPossession,
		BlockID:   "b1",
		BlockName: "Playing Out",
	}
	comments := "focus on the first pass"

	require.NoError(t, s.SetDayTheme(weekID, 2, theme, &comments))
	require.NoError(t, s.SetDayTheme(weekID, 2, nil, nil))

	count := 0
	for _, d := range s.Weeks[0].Days {
		if d.DayOfWeek == 2 {
			count++
			assert.Nil(t, d.Theme)
			assert.Nil(t, d.Comments)
		}
	}
	assert.Equal(t, 1, count)
}

func TestSetDayThemeValidation(t *testing.T) {
	s := DefaultSyllabus()
	weekID := s.Weeks[0].ID

	assert.Error(t, s.SetDayTheme(weekID, -1, nil, nil))
	assert.Error(t, s.SetDayTheme(weekID, 7, nil, nil))
	assert.Error(t, s.SetDayTheme("nope", 0, nil, nil))
	assert.Error(t, s.SetDayTheme(weekID, 0, &ThemeSelection{BlockType: "transition"}, nil))
}
