package domain

import (
	"encoding/json"
	"sort"
)

// TeamSet is the set of canonical team codes with a game on a given date.
type TeamSet map[TeamCode]struct{}

// NewTeamSet builds a set from raw abbreviations, normalizing and deduplicating.
func NewTeamSet(raw ...string) TeamSet {
	set := make(TeamSet, len(raw))
	for _, r := range raw {
		if code := NormalizeTeam(r); code != "" {
			set[code] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the (normalized) team appears in the set.
func (s TeamSet) Contains(raw string) bool {
	_, ok := s[NormalizeTeam(raw)]
	return ok
}

// Codes returns the set's members in sorted order.
func (s TeamSet) Codes() []TeamCode {
	codes := make([]TeamCode, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// MarshalJSON renders the set as a sorted array of codes.
func (s TeamSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Codes())
}

// PlaysOn reports whether the team identified by a raw abbreviation has a game
// against the given day's playing set.
func PlaysOn(raw string, playing TeamSet) bool {
	return playing.Contains(raw)
}

// ScheduleDay pairs one calendar date (YYYY-MM-DD) with the teams playing on it.
type ScheduleDay struct {
	Date  string  `json:"date"`
	Teams TeamSet `json:"teams"`
}

// DaySchedule is the ordered list of days in the current fantasy week.
// Built fresh per query and never mutated afterwards.
type DaySchedule []ScheduleDay

// DaySlate describes a single day's games: the playing set plus who faces whom.
type DaySlate struct {
	Date      string                `json:"date"`
	Teams     TeamSet               `json:"teams"`
	Opponents map[TeamCode]TeamCode `json:"opponents"`
}

// Opponent returns the opponent for a (raw) team abbreviation, or "" when the
// team does not play that day.
func (d DaySlate) Opponent(raw string) TeamCode {
	return d.Opponents[NormalizeTeam(raw)]
}
