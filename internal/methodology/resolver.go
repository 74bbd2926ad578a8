package methodology

import (
	"encoding/json"
	"fmt"
)

// Resolution sources.
const (
	SourceTeam = "team"
	SourceClub = "club"
	SourceNone = "none"
)

// Resolution is the tagged result of a scope lookup. Source "none" means the
// scope is unconfigured and the caller should route to initial setup; it is
// distinct from a lookup failure, which is returned as an error.
type Resolution struct {
	Source  string          `json:"source"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Unconfigured reports whether the scope has no record at either level.
func (r Resolution) Unconfigured() bool {
	return r.Source == SourceNone
}

// Resolver answers "what configuration does this coach actually see" for a
// scope: the team override wins outright when present, otherwise the club
// default applies. There is no field-level merging between the two.
type Resolver struct {
	store ConfigStore
}

func NewResolver(store ConfigStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve looks up kind for (clubID, teamID). For the game-model kind, a team
// lookup that falls through to an existing club record copies that record
// into a new team-scoped row before returning, so every later edit at team
// scope is team-local (copy-on-first-read, not a live reference). actorID is
// recorded as the author of the materialized copy.
func (r *Resolver) Resolve(kind ConfigKind, clubID uint, teamID *uint, actorID uint) (Resolution, error) {
	if teamID != nil {
		record, err := r.store.Get(kind, clubID, teamID)
		if err != nil {
			return Resolution{}, fmt.Errorf("resolve %s at team scope: %w", kind, err)
		}
		if record != nil {
			return Resolution{Source: SourceTeam, Payload: json.RawMessage(record.Payload)}, nil
		}
	}

	record, err := r.store.Get(kind, clubID, nil)
	if err != nil {
		return Resolution{}, fmt.Errorf("resolve %s at club scope: %w", kind, err)
	}
	if record == nil {
		return Resolution{Source: SourceNone}, nil
	}

	if teamID != nil && kind == KindGameModel {
		if err := r.store.Put(kind, clubID, teamID, actorID, json.RawMessage(record.Payload)); err != nil {
			return Resolution{}, fmt.Errorf("materialize team copy of %s: %w", kind, err)
		}
		return Resolution{Source: SourceTeam, Payload: json.RawMessage(record.Payload)}, nil
	}

	return Resolution{Source: SourceClub, Payload: json.RawMessage(record.Payload)}, nil
}

// Revert clears the team-level record so the next Resolve at team scope falls
// through to whatever the club-level state is at that moment (which may be
// unconfigured). For the game-model kind the next team-scope Resolve will
// re-trigger the inheritance copy.
func (r *Resolver) Revert(kind ConfigKind, clubID, teamID uint) error {
	if err := r.store.Clear(kind, clubID, &teamID); err != nil {
		return fmt.Errorf("revert %s for team %d: %w", kind, teamID, err)
	}
	return nil
}
