package domain

// Lineup slots and injury statuses as the fantasy API reports them.
const (
	SlotBench          = "BE"
	SlotInjuredReserve = "IR"
	StatusOut          = "OUT"
	StatusDayToDay     = "DAY_TO_DAY"
	StatusActive       = "ACTIVE"
)

// RosterEntry is a read-only snapshot of one rostered player.
type RosterEntry struct {
	PlayerID     int      `json:"playerId"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	ProTeam      string   `json:"proTeam"`
	LineupSlot   string   `json:"lineupSlot"`
	InjuryStatus string   `json:"injuryStatus"`
	Averages     StatLine `json:"averages"`
}

// Playable reports whether the entry can score: not stashed on IR and,
// when excludeOut is set, not ruled out.
func (e RosterEntry) Playable(excludeOut bool) bool {
	if e.LineupSlot == SlotInjuredReserve {
		return false
	}
	if excludeOut && e.InjuryStatus == StatusOut {
		return false
	}
	return true
}

// ActiveRoster filters a roster down to its playable entries.
func ActiveRoster(roster []RosterEntry, excludeOut bool) []RosterEntry {
	active := make([]RosterEntry, 0, len(roster))
	for _, e := range roster {
		if e.Playable(excludeOut) {
			active = append(active, e)
		}
	}
	return active
}

// FantasyTeam is one side of a fantasy league.
type FantasyTeam struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Roster []RosterEntry `json:"roster"`
}

// MatchupSide pairs a fantasy team with its accumulated stat totals for the
// current scoring period.
type MatchupSide struct {
	Team   FantasyTeam `json:"team"`
	Totals StatLine    `json:"totals"`
}

// Matchup is one head-to-head pairing in the current scoring period.
type Matchup struct {
	Week int         `json:"week"`
	Home MatchupSide `json:"home"`
	Away MatchupSide `json:"away"`
}

// FreeAgent is an unrostered player available on the waiver wire.
type FreeAgent struct {
	RosterEntry
	OnWaivers     bool    `json:"onWaivers"`
	PercentOwned  float64 `json:"percentOwned"`
	PercentChange float64 `json:"percentChange"`
}
