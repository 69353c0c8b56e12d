package providers

import (
	"context"

	"fantasy-gm-service/internal/domain"
)

// LeagueRef identifies one fantasy league and the credentials needed to read
// it. Providers receive it per call so a single client can serve many leagues.
type LeagueRef struct {
	Name       string
	ID         int
	Year       int
	SWID       string
	EspnS2     string
	Categories []string
	MyTeamName string
}

// ScheduleProvider fetches the pro game slate for one day.
// The date parameter should be a YYYY-MM-DD string; providers interpret an
// empty date as "today" in their configured timezone.
type ScheduleProvider interface {
	FetchSlate(ctx context.Context, date string) (domain.DaySlate, error)
}

// StandingsProvider fetches pro team win percentages for strength-of-schedule.
type StandingsProvider interface {
	FetchWinPercentages(ctx context.Context) (domain.SOSMap, error)
}

// LeagueProvider fetches fantasy league data: matchups with rosters, and the
// free agent pool.
type LeagueProvider interface {
	FetchMatchups(ctx context.Context, ref LeagueRef) ([]domain.Matchup, error)
	FetchFreeAgents(ctx context.Context, ref LeagueRef, limit int) ([]domain.FreeAgent, error)
}
