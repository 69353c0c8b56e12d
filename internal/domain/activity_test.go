package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterOf(teams ...string) []RosterEntry {
	roster := make([]RosterEntry, 0, len(teams))
	for _, team := range teams {
		roster = append(roster, RosterEntry{ProTeam: team})
	}
	return roster
}

func TestWeeklyActivityDuplicatesCountIndividually(t *testing.T) {
	sched := DaySchedule{{Date: "2026-01-05", Teams: NewTeamSet("GSW")}}

	counts := WeeklyActivity(rosterOf("GSW", "GS", "LAL"), sched)

	require.Len(t, counts, 1)
	assert.Equal(t, 2, counts[0].Count)
}

func TestWeeklyActivityOrderIndependent(t *testing.T) {
	sched := DaySchedule{
		{Date: "2026-01-05", Teams: NewTeamSet("GSW", "BOS")},
		{Date: "2026-01-06", Teams: NewTeamSet("LAL")},
	}

	a := WeeklyActivity(rosterOf("GSW", "LAL", "BOS"), sched)
	b := WeeklyActivity(rosterOf("BOS", "GSW", "LAL"), sched)

	assert.Equal(t, a, b)
}

func TestWeeklyActivityEmptyRoster(t *testing.T) {
	sched := DaySchedule{
		{Date: "2026-01-05", Teams: NewTeamSet("GSW")},
		{Date: "2026-01-06", Teams: NewTeamSet("LAL")},
	}

	for _, dc := range WeeklyActivity(nil, sched) {
		assert.Zero(t, dc.Count)
	}
}

func TestWeeklyActivityEmptySchedule(t *testing.T) {
	sched := DaySchedule{
		{Date: "2026-01-05", Teams: NewTeamSet()},
		{Date: "2026-01-06", Teams: nil},
	}

	for _, dc := range WeeklyActivity(rosterOf("GSW", "LAL"), sched) {
		assert.Zero(t, dc.Count)
	}
}

func TestWeeklyActivityCountsExactPlayingDays(t *testing.T) {
	// Team plays 3 of 7 days; a roster of only that team's players must be
	// non-zero on exactly those days.
	sched := DaySchedule{
		{Date: "2026-01-05", Teams: NewTeamSet("GSW")},
		{Date: "2026-01-06", Teams: NewTeamSet("LAL")},
		{Date: "2026-01-07", Teams: NewTeamSet("GSW", "LAL")},
		{Date: "2026-01-08", Teams: NewTeamSet()},
		{Date: "2026-01-09", Teams: NewTeamSet("GSW")},
		{Date: "2026-01-10", Teams: NewTeamSet("BOS")},
		{Date: "2026-01-11", Teams: NewTeamSet()},
	}

	counts := WeeklyActivity(rosterOf("GS", "GSW"), sched)

	require.Len(t, counts, 7)
	wantActive := map[string]bool{"2026-01-05": true, "2026-01-07": true, "2026-01-09": true}
	for _, dc := range counts {
		if wantActive[dc.Date] {
			assert.Equal(t, 2, dc.Count, "date %s", dc.Date)
		} else {
			assert.Zero(t, dc.Count, "date %s", dc.Date)
		}
	}
}

func TestCapCounts(t *testing.T) {
	counts := []DayCount{{Date: "a", Count: 12}, {Date: "b", Count: 8}}

	capped := CapCounts(counts, 10)
	assert.Equal(t, 10, capped[0].Count)
	assert.Equal(t, 8, capped[1].Count)

	// No limit leaves counts alone.
	assert.Equal(t, counts, CapCounts(counts, 0))
}

func TestTotalCount(t *testing.T) {
	assert.Equal(t, 20, TotalCount([]DayCount{{Count: 12}, {Count: 8}}))
	assert.Zero(t, TotalCount(nil))
}

func TestActiveRosterFiltering(t *testing.T) {
	roster := []RosterEntry{
		{Name: "starter", LineupSlot: "PG"},
		{Name: "bench", LineupSlot: SlotBench},
		{Name: "stashed", LineupSlot: SlotInjuredReserve},
		{Name: "ruled out", LineupSlot: "C", InjuryStatus: StatusOut},
		{Name: "questionable", LineupSlot: "SF", InjuryStatus: StatusDayToDay},
	}

	active := ActiveRoster(roster, true)
	require.Len(t, active, 3)
	assert.Equal(t, "starter", active[0].Name)
	assert.Equal(t, "bench", active[1].Name)
	assert.Equal(t, "questionable", active[2].Name)

	// Keeping OUT players only drops the IR stash.
	assert.Len(t, ActiveRoster(roster, false), 4)
}
