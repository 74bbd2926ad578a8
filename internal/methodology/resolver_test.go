package methodology

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type memScope struct {
	kind   ConfigKind
	clubID uint
	teamID uint // 0 means club level
}

// memConfigStore is an in-memory ConfigStore for resolver tests.
type memConfigStore struct {
	records map[memScope]*MethodologyConfig
	puts    int
}

func newMemConfigStore() *memConfigStore {
	return &memConfigStore{records: make(map[memScope]*MethodologyConfig)}
}

func key(kind ConfigKind, clubID uint, teamID *uint) memScope {
	sc := memScope{kind: kind, clubID: clubID}
	if teamID != nil {
		sc.teamID = *teamID
	}
	return sc
}

func (m *memConfigStore) Get(kind ConfigKind, clubID uint, teamID *uint) (*MethodologyConfig, error) {
	return m.records[key(kind, clubID, teamID)], nil
}

func (m *memConfigStore) Put(kind ConfigKind, clubID uint, teamID *uint, actorID uint, payload json.RawMessage) error {
	m.puts++
	m.records[key(kind, clubID, teamID)] = &MethodologyConfig{
		Kind:        kind,
		ClubID:      clubID,
		TeamID:      teamID,
		UpdatedByID: actorID,
		Payload:     datatypes.JSON(payload),
	}
	return nil
}

func (m *memConfigStore) Clear(kind ConfigKind, clubID uint, teamID *uint) error {
	delete(m.records, key(kind, clubID, teamID))
	return nil
}

func uintPtr(v uint) *uint { return &v }

func TestResolveUnconfiguredScope(t *testing.T) {
	r := NewResolver(newMemConfigStore())

	res, err := r.Resolve(KindPlayingMethodology, 1, nil, 10)
	require.NoError(t, err)
	assert.True(t, res.Unconfigured())
	assert.Equal(t, SourceNone, res.Source)
	assert.Nil(t, res.Payload)
}

func TestResolveClubFallback(t *testing.T) {
	store := newMemConfigStore()
	payload := json.RawMessage(`{"zone_count":3}`)
	require.NoError(t, store.Put(KindPlayingMethodology, 1, nil, 10, payload))
	r := NewResolver(store)

	res, err := r.Resolve(KindPlayingMethodology, 1, uintPtr(7), 10)
	require.NoError(t, err)
	assert.Equal(t, SourceClub, res.Source)
	assert.JSONEq(t, string(payload), string(res.Payload))

	// Non-game-model kinds never materialize a team copy.
	teamRecord, err := store.Get(KindPlayingMethodology, 1, uintPtr(7))
	require.NoError(t, err)
	assert.Nil(t, teamRecord)
}

func TestResolveTeamOverrideWins(t *testing.T) {
	store := newMemConfigStore()
	require.NoError(t, store.Put(KindPlayingMethodology, 1, nil, 10, json.RawMessage(`{"v":"club"}`)))
	require.NoError(t, store.Put(KindPlayingMethodology, 1, uintPtr(7), 10, json.RawMessage(`{"v":"team"}`)))
	r := NewResolver(store)

	res, err := r.Resolve(KindPlayingMethodology, 1, uintPtr(7), 10)
	require.NoError(t, err)
	assert.Equal(t, SourceTeam, res.Source)
	assert.JSONEq(t, `{"v":"team"}`, string(res.Payload))
}

func TestResolveGameModelCopiesOnFirstRead(t *testing.T) {
	store := newMemConfigStore()
	payload := json.RawMessage(`{"zone_count":4}`)
	require.NoError(t, store.Put(KindGameModel, 1, nil, 10, payload))
	r := NewResolver(store)

	res, err := r.Resolve(KindGameModel, 1, uintPtr(7), 42)
	require.NoError(t, err)
	assert.Equal(t, SourceTeam, res.Source)
	assert.JSONEq(t, string(payload), string(res.Payload))

	teamRecord, err := store.Get(KindGameModel, 1, uintPtr(7))
	require.NoError(t, err)
	require.NotNil(t, teamRecord)
	assert.Equal(t, uint(42), teamRecord.UpdatedByID)
	assert.JSONEq(t, string(payload), string(teamRecord.Payload))

	// Second resolve hits the team copy; no further writes happen.
	putsBefore := store.puts
	res, err = r.Resolve(KindGameModel, 1, uintPtr(7), 42)
	require.NoError(t, err)
	assert.Equal(t, SourceTeam, res.Source)
	assert.Equal(t, putsBefore, store.puts)
}

func TestResolveGameModelUnconfiguredClubDoesNotCopy(t *testing.T) {
	store := newMemConfigStore()
	r := NewResolver(store)

	res, err := r.Resolve(KindGameModel, 1, uintPtr(7), 10)
	require.NoError(t, err)
	assert.True(t, res.Unconfigured())
	assert.Zero(t, store.puts)
}

func TestRevertFallsBackToCurrentClubState(t *testing.T) {
	store := newMemConfigStore()
	require.NoError(t, store.Put(KindPlayingMethodology, 1, nil, 10, json.RawMessage(`{"v":"club"}`)))
	require.NoError(t, store.Put(KindPlayingMethodology, 1, uintPtr(7), 10, json.RawMessage(`{"v":"team"}`)))
	r := NewResolver(store)

	require.NoError(t, r.Revert(KindPlayingMethodology, 1, 7))

	res, err := r.Resolve(KindPlayingMethodology, 1, uintPtr(7), 10)
	require.NoError(t, err)
	assert.Equal(t, SourceClub, res.Source)
	assert.JSONEq(t, `{"v":"club"}`, string(res.Payload))

	// If the club record is also gone, the scope is simply unconfigured.
	require.NoError(t, store.Clear(KindPlayingMethodology, 1, nil))
	res, err = r.Resolve(KindPlayingMethodology, 1, uintPtr(7), 10)
	require.NoError(t, err)
	assert.True(t, res.Unconfigured())
}

func TestZoneSetupAndDestructiveCountChange(t *testing.T) {
	store := newMemConfigStore()
	r := NewResolver(store)

	res, err := r.Resolve(KindGameModel, 1, nil, 10)
	require.NoError(t, err)
	require.True(t, res.Unconfigured())

	set, err := DefaultZoneSet(3)
	require.NoError(t, err)
	set.Zones[0].InPossession = []ThemeBlock{{Name: "Build Up", Details: "Play through the thirds"}}
	require.NoError(t, NormalizeZoneSet(&set))
	payload, err := json.Marshal(set)
	require.NoError(t, err)
	require.NoError(t, store.Put(KindGameModel, 1, nil, 10, payload))

	res, err = r.Resolve(KindGameModel, 1, nil, 10)
	require.NoError(t, err)
	var got ZoneSet
	require.NoError(t, json.Unmarshal(res.Payload, &got))
	assert.Equal(t, 3, got.ZoneCount)
	assert.Equal(t, "Build Up", got.Zones[0].InPossession[0].Name)

	// Switching to 4 zones replaces everything with fresh defaults.
	replacement, err := DefaultZoneSet(4)
	require.NoError(t, err)
	payload, err = json.Marshal(replacement)
	require.NoError(t, err)
	require.NoError(t, store.Put(KindGameModel, 1, nil, 10, payload))

	res, err = r.Resolve(KindGameModel, 1, nil, 10)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(res.Payload, &got))
	assert.Equal(t, 4, got.ZoneCount)
	require.Len(t, got.Zones, 4)
	for _, z := range got.Zones {
		assert.Empty(t, z.InPossession)
	}
}

func TestParseConfigKind(t *testing.T) {
	for _, s := range []string{"game_model", "playing_methodology", "positional_profiles", "training_syllabus"} {
		kind, err := ParseConfigKind(s)
		require.NoError(t, err)
		assert.Equal(t, ConfigKind(s), kind)
	}
	_, err := ParseConfigKind("set_pieces")
	assert.Error(t, err)
}
