package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTeamSetNormalizesAndDedupes(t *testing.T) {
	set := NewTeamSet("GS", "gsw", "LAL", "lal", "")

	assert.Len(t, set, 2)
	assert.Equal(t, []TeamCode{"GSW", "LAL"}, set.Codes())
}

func TestPlaysOnMatchesAcrossSpellings(t *testing.T) {
	playing := NewTeamSet("GSW", "LAL")

	assert.True(t, PlaysOn("GS", playing))
	assert.True(t, PlaysOn("gsw", playing))
	assert.True(t, PlaysOn("LAL", playing))
	assert.False(t, PlaysOn("BOS", playing))
	assert.False(t, PlaysOn("", playing))
}

func TestPlaysOnEmptySet(t *testing.T) {
	assert.False(t, PlaysOn("GSW", NewTeamSet()))
	assert.False(t, PlaysOn("GSW", nil))
}

func TestTeamSetMarshalsAsSortedArray(t *testing.T) {
	raw, err := json.Marshal(NewTeamSet("LAL", "GS", "BOS"))
	require.NoError(t, err)
	assert.JSONEq(t, `["BOS","GSW","LAL"]`, string(raw))
}

func TestDaySlateOpponent(t *testing.T) {
	slate := DaySlate{
		Date:      "2026-01-05",
		Teams:     NewTeamSet("GSW", "LAL"),
		Opponents: map[TeamCode]TeamCode{"GSW": "LAL", "LAL": "GSW"},
	}

	assert.Equal(t, TeamCode("LAL"), slate.Opponent("GS"))
	assert.Equal(t, TeamCode("GSW"), slate.Opponent("lal"))
	assert.Equal(t, TeamCode(""), slate.Opponent("BOS"))
}
