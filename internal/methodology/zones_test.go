package methodology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultZoneSet(t *testing.T) {
	for _, count := range []int{3, 4} {
		set, err := DefaultZoneSet(count)
		require.NoError(t, err)
		assert.Equal(t, count, set.ZoneCount)
		require.Len(t, set.Zones, count)
		for i, z := range set.Zones {
			assert.Equal(t, i+1, z.Order)
			assert.NotEmpty(t, z.ID)
			assert.NotEmpty(t, z.Name)
			assert.Empty(t, z.InPossession)
			assert.Empty(t, z.OutOfPossession)
		}
	}
}

func TestDefaultZoneSetRejectsOtherCounts(t *testing.T) {
	for _, count := range []int{0, 1, 2, 5, -3} {
		_, err := DefaultZoneSet(count)
		assert.Error(t, err)
	}
}

func TestNormalizeZoneSetRenumbersDense(t *testing.T) {
	set := ZoneSet{
		ZoneCount: 3,
		Zones: []Zone{
			{ID: "c", Order: 9, Name: "Attacking Third"},
			{ID: "a", Order: 2, Name: "Defensive Third"},
			{ID: "b", Order: 5, Name: "Middle Third"},
		},
	}
	require.NoError(t, NormalizeZoneSet(&set))
	assert.Equal(t, []string{"a", "b", "c"}, []string{set.Zones[0].ID, set.Zones[1].ID, set.Zones[2].ID})
	for i, z := range set.Zones {
		assert.Equal(t, i+1, z.Order)
	}
}

func TestNormalizeZoneSetPrunesEmptyBlocks(t *testing.T) {
	set := ZoneSet{
		ZoneCount: 3,
		Zones: []Zone{
			{Order: 1, Name: "Zone 1", InPossession: []ThemeBlock{
				{Name: "", Details: ""},
				{Name: "  ", Details: "\t"},
				{Name: "Build Up", Details: ""},
				{Name: "", Details: "Keep width on the far side"},
			}},
			{Order: 2, Name: "Zone 2"},
			{Order: 3, Name: "Zone 3"},
		},
	}
	require.NoError(t, NormalizeZoneSet(&set))
	require.Len(t, set.Zones[0].InPossession, 2)
	assert.Equal(t, "Build Up", set.Zones[0].InPossession[0].Name)
	assert.Equal(t, "Keep width on the far side", set.Zones[0].InPossession[1].Details)
	for _, b := range set.Zones[0].InPossession {
		assert.NotEmpty(t, b.ID)
	}
}

func TestNormalizeZoneSetRejectsCountMismatch(t *testing.T) {
	set := ZoneSet{
		ZoneCount: 4,
		Zones: []Zone{
			{Order: 1, Name: "Zone 1"},
			{Order: 2, Name: "Zone 2"},
			{Order: 3, Name: "Zone 3"},
		},
	}
	assert.Error(t, NormalizeZoneSet(&set))
}

func TestNormalizeZoneSetRejectsEmptyZoneName(t *testing.T) {
	set := ZoneSet{
		ZoneCount: 3,
		Zones: []Zone{
			{Order: 1, Name: "Zone 1"},
			{Order: 2, Name: "   "},
			{Order: 3, Name: "Zone 3"},
		},
	}
	assert.Error(t, NormalizeZoneSet(&set))
}
