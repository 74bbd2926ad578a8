package methodology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAttributesDropsBlanksAndCaps(t *testing.T) {
	attrs := NormalizeAttributes(ProfileAttributes{
		InPossession:    []string{"first_touch", "", "  ", "passing", "dribbling", "vision", "composure", "finishing"},
		OutOfPossession: []string{"pressing", "tackling"},
	})
	assert.Equal(t, []string{"first_touch", "passing", "dribbling", "vision", "composure"}, attrs.InPossession)
	assert.Equal(t, []string{"pressing", "tackling"}, attrs.OutOfPossession)
}

func TestTogglePositionActivateSeedsFromDefaults(t *testing.T) {
	set := ProfileSet{}
	defaults := ProfileAttributes{
		InPossession:    []string{"first_touch", "passing"},
		OutOfPossession: []string{"pressing"},
	}
	set.TogglePosition("striker", true, &defaults)

	require.Len(t, set.Profiles, 1)
	p := set.Profiles[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "striker", p.PositionKey)
	assert.True(t, p.IsActive)
	assert.Equal(t, defaults.InPossession, p.Attributes.InPossession)
	assert.Equal(t, defaults.OutOfPossession, p.Attributes.OutOfPossession)
}

func TestTogglePositionActivateWithoutDefaults(t *testing.T) {
	set := ProfileSet{}
	set.TogglePosition("winger", true, nil)

	require.Len(t, set.Profiles, 1)
	assert.Empty(t, set.Profiles[0].Attributes.InPossession)
	assert.Empty(t, set.Profiles[0].Attributes.OutOfPossession)
}

func TestTogglePositionDeactivateKeepsAttributes(t *testing.T) {
	set := ProfileSet{}
	defaults := ProfileAttributes{InPossession: []string{"finishing"}}
	set.TogglePosition("striker", true, &defaults)

	set.TogglePosition("striker", false, nil)
	require.Len(t, set.Profiles, 1)
	assert.False(t, set.Profiles[0].IsActive)
	assert.Equal(t, []string{"finishing"}, set.Profiles[0].Attributes.InPossession)

	set.TogglePosition("striker", true, nil)
	assert.True(t, set.Profiles[0].IsActive)
	assert.Equal(t, []string{"finishing"}, set.Profiles[0].Attributes.InPossession)
}

func TestTogglePositionDeactivateUnknownIsNoOp(t *testing.T) {
	set := ProfileSet{}
	set.TogglePosition("goalkeeper", false, nil)
	assert.Empty(t, set.Profiles)
}

func TestUpdateAttributes(t *testing.T) {
	set := ProfileSet{}
	set.TogglePosition("centre_back", true, nil)
	profileID := set.Profiles[0].ID

	err := set.UpdateAttributes(profileID, ProfileAttributes{
		InPossession:    []string{"passing", "", "composure"},
		OutOfPossession: []string{"heading", "tackling", "positioning", "marking", "strength", "aggression"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"passing", "composure"}, set.Profiles[0].Attributes.InPossession)
	assert.Len(t, set.Profiles[0].Attributes.OutOfPossession, MaxAttributeKeys)
}

func TestUpdateAttributesUnknownProfile(t *testing.T) {
	set := ProfileSet{}
	err := set.UpdateAttributes("missing", ProfileAttributes{})
	assert.Error(t, err)
}
