package methodology

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxAttributeKeys caps each possession-state attribute list on a positional
// profile.
const MaxAttributeKeys = 5

// ProfileAttributes holds up to MaxAttributeKeys catalog attribute keys per
// possession state.
type ProfileAttributes struct {
	InPossession    []string `json:"in_possession"`
	OutOfPossession []string `json:"out_of_possession"`
}

// PositionalProfile is a per-position coaching emphasis record. Deactivation
// is soft: attribute data survives and reactivation restores it.
type PositionalProfile struct {
	ID          string            `json:"id"`
	PositionKey string            `json:"position_key"`
	IsActive    bool              `json:"is_active"`
	Attributes  ProfileAttributes `json:"attributes"`
}

// ProfileSet is the positional-profile payload stored per scope.
type ProfileSet struct {
	Profiles []PositionalProfile `json:"profiles"`
}

// normalizeAttributeKeys removes blank entries and caps the list at
// MaxAttributeKeys, preserving submitted order.
func normalizeAttributeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out = append(out, k)
		if len(out) == MaxAttributeKeys {
			break
		}
	}
	return out
}

// NormalizeAttributes enforces the blank-filter and cap laws on both lists.
func NormalizeAttributes(attrs ProfileAttributes) ProfileAttributes {
	return ProfileAttributes{
		InPossession:    normalizeAttributeKeys(attrs.InPossession),
		OutOfPossession: normalizeAttributeKeys(attrs.OutOfPossession),
	}
}

// TogglePosition activates or deactivates the profile for positionKey inside
// the set. First activation creates the profile, seeded from defaults when
// provided (the system position-default catalog) or empty otherwise.
// Deactivation only flips is_active; attributes are kept.
func (s *ProfileSet) TogglePosition(positionKey string, active bool, defaults *ProfileAttributes) {
	for i := range s.Profiles {
		if s.Profiles[i].PositionKey == positionKey {
			s.Profiles[i].IsActive = active
			return
		}
	}
	if !active {
		// Deactivating a position that was never configured is a no-op.
		return
	}
	attrs := ProfileAttributes{InPossession: []string{}, OutOfPossession: []string{}}
	if defaults != nil {
		attrs = NormalizeAttributes(*defaults)
	}
	s.Profiles = append(s.Profiles, PositionalProfile{
		ID:          uuid.NewString(),
		PositionKey: positionKey,
		IsActive:    true,
		Attributes:  attrs,
	})
}

// UpdateAttributes fully replaces the attributes of the identified profile,
// enforcing the cap and blank-filter laws at this boundary.
func (s *ProfileSet) UpdateAttributes(profileID string, attrs ProfileAttributes) error {
	for i := range s.Profiles {
		if s.Profiles[i].ID == profileID {
			s.Profiles[i].Attributes = NormalizeAttributes(attrs)
			return nil
		}
	}
	return fmt.Errorf("no positional profile with id %s", profileID)
}
