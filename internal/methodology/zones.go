package methodology

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ThemeBlock is a named, free-text tactical instruction attached to a zone
// and a possession state.
type ThemeBlock struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details"`
}

// Zone is an ordered tactical region of a pitch. Order is a dense 1-based
// rank, unique within a zone set.
type Zone struct {
	ID              string       `json:"id"`
	Order           int          `json:"order"`
	Name            string       `json:"name"`
	InPossession    []ThemeBlock `json:"in_possession"`
	OutOfPossession []ThemeBlock `json:"out_of_possession"`
}

// ZoneSet is a fixed count of 3 or 4 zones plus an optional match-format tag.
type ZoneSet struct {
	ZoneCount   int    `json:"zone_count"`
	MatchFormat string `json:"match_format,omitempty"`
	Zones       []Zone `json:"zones"`
}

// DefaultZoneSet produces count zones with ascending order 1..count, generic
// placeholder names and empty theme arrays. Deterministic apart from the
// generated IDs; no I/O. Used for first-time setup and for destructive
// zone-count changes.
func DefaultZoneSet(count int) (ZoneSet, error) {
	if count != 3 && count != 4 {
		return ZoneSet{}, fmt.Errorf("zone count must be 3 or 4, got %d", count)
	}
	zones := make([]Zone, count)
	for i := 0; i < count; i++ {
		zones[i] = Zone{
			ID:              uuid.NewString(),
			Order:           i + 1,
			Name:            fmt.Sprintf("Zone %d", i+1),
			InPossession:    []ThemeBlock{},
			OutOfPossession: []ThemeBlock{},
		}
	}
	return ZoneSet{ZoneCount: count, Zones: zones}, nil
}

// pruneBlocks drops blocks whose name and details are both empty and assigns
// IDs to blocks that arrived without one.
func pruneBlocks(blocks []ThemeBlock) []ThemeBlock {
	pruned := make([]ThemeBlock, 0, len(blocks))
	for _, b := range blocks {
		if strings.TrimSpace(b.Name) == "" && strings.TrimSpace(b.Details) == "" {
			continue
		}
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		pruned = append(pruned, b)
	}
	return pruned
}

// NormalizeZoneSet validates and canonicalizes a zone set before it is
// persisted: the zone count must match the zone list, empty theme blocks are
// pruned, and zone order is made dense ascending from 1 (stable with respect
// to the submitted order).
func NormalizeZoneSet(set *ZoneSet) error {
	if set.ZoneCount != 3 && set.ZoneCount != 4 {
		return fmt.Errorf("zone count must be 3 or 4, got %d", set.ZoneCount)
	}
	if len(set.Zones) != set.ZoneCount {
		return fmt.Errorf("zone set declares %d zones but contains %d", set.ZoneCount, len(set.Zones))
	}
	sort.SliceStable(set.Zones, func(i, j int) bool {
		return set.Zones[i].Order < set.Zones[j].Order
	})
	for i := range set.Zones {
		z := &set.Zones[i]
		z.Order = i + 1
		if z.ID == "" {
			z.ID = uuid.NewString()
		}
		if strings.TrimSpace(z.Name) == "" {
			return fmt.Errorf("zone %d has an empty name", z.Order)
		}
		z.InPossession = pruneBlocks(z.InPossession)
		z.OutOfPossession = pruneBlocks(z.OutOfPossession)
	}
	return nil
}
