package fixture

import (
	"context"
	"time"

	"fantasy-gm-service/internal/domain"
	"fantasy-gm-service/internal/providers"
)

// Provider returns static league and schedule data useful for local testing
// and bootstrapping without ESPN credentials.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchSlate returns a deterministic slate: four teams play every day.
func (p *Provider) FetchSlate(ctx context.Context, date string) (domain.DaySlate, error) {
	_ = ctx

	if date == "" {
		date = p.now().UTC().Format("2006-01-02")
	}

	return domain.DaySlate{
		Date:  date,
		Teams: domain.NewTeamSet("BOS", "LAL", "GSW", "MIA"),
		Opponents: map[domain.TeamCode]domain.TeamCode{
			"BOS": "LAL",
			"LAL": "BOS",
			"GSW": "MIA",
			"MIA": "GSW",
		},
	}, nil
}

// FetchWinPercentages returns deterministic standings.
func (p *Provider) FetchWinPercentages(ctx context.Context) (domain.SOSMap, error) {
	_ = ctx
	return domain.SOSMap{
		"BOS": 0.75,
		"LAL": 0.55,
		"GSW": 0.48,
		"MIA": 0.33,
	}, nil
}

// FetchMatchups returns one example matchup for any league.
func (p *Provider) FetchMatchups(ctx context.Context, ref providers.LeagueRef) ([]domain.Matchup, error) {
	_ = ctx

	home := domain.FantasyTeam{
		ID:   1,
		Name: "Fixture Home",
		Roster: []domain.RosterEntry{
			{
				PlayerID:     101,
				Name:         "Fixture Guard",
				Position:     "PG",
				ProTeam:      "BOS",
				LineupSlot:   "PG",
				InjuryStatus: domain.StatusActive,
				Averages:     domain.StatLine{Points: 24, Rebounds: 5, Assists: 7, Steals: 1.2, Blocks: 0.3, Minutes: 33},
			},
			{
				PlayerID:     102,
				Name:         "Fixture Big",
				Position:     "C",
				ProTeam:      "GSW",
				LineupSlot:   "C",
				InjuryStatus: domain.StatusActive,
				Averages:     domain.StatLine{Points: 18, Rebounds: 11, Assists: 2, Steals: 0.6, Blocks: 1.8, DoubleDoubles: 0.5, Minutes: 30},
			},
		},
	}
	away := domain.FantasyTeam{
		ID:   2,
		Name: "Fixture Away",
		Roster: []domain.RosterEntry{
			{
				PlayerID:     201,
				Name:         "Fixture Wing",
				Position:     "SF",
				ProTeam:      "LAL",
				LineupSlot:   "SF",
				InjuryStatus: domain.StatusActive,
				Averages:     domain.StatLine{Points: 21, Rebounds: 6, Assists: 4, Steals: 1.0, Blocks: 0.5, Minutes: 32},
			},
		},
	}

	if ref.MyTeamName != "" {
		home.Name = ref.MyTeamName
	}

	return []domain.Matchup{
		{
			Week: 1,
			Home: domain.MatchupSide{Team: home, Totals: domain.StatLine{Points: 240, Rebounds: 90, Assists: 55}},
			Away: domain.MatchupSide{Team: away, Totals: domain.StatLine{Points: 228, Rebounds: 101, Assists: 48}},
		},
	}, nil
}

// FetchFreeAgents returns a deterministic free agent pool.
func (p *Provider) FetchFreeAgents(ctx context.Context, ref providers.LeagueRef, limit int) ([]domain.FreeAgent, error) {
	_ = ctx
	_ = ref

	agents := []domain.FreeAgent{
		{
			RosterEntry: domain.RosterEntry{
				PlayerID:     301,
				Name:         "Hot Pickup",
				Position:     "SG",
				ProTeam:      "MIA",
				InjuryStatus: domain.StatusActive,
				Averages:     domain.StatLine{Points: 15, Rebounds: 4, Assists: 3, Steals: 1.1, Minutes: 28},
			},
			PercentOwned:  42.0,
			PercentChange: 3.5,
		},
		{
			RosterEntry: domain.RosterEntry{
				PlayerID:     302,
				Name:         "Waiver Big",
				Position:     "PF",
				ProTeam:      "GSW",
				InjuryStatus: domain.StatusActive,
				Averages:     domain.StatLine{Points: 11, Rebounds: 8, Assists: 1, Blocks: 1.1, Minutes: 24},
			},
			OnWaivers:     true,
			PercentOwned:  18.0,
			PercentChange: -0.4,
		},
	}

	if limit > 0 && limit < len(agents) {
		agents = agents[:limit]
	}
	return agents, nil
}
