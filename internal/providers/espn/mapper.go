package espn

import (
	"fantasy-gm-service/internal/domain"
)

// mapSlate flattens scoreboard events into the day slate. Competitions that do
// not carry exactly two competitors (all-star exhibitions and the like) still
// contribute their teams to the playing set but not to the opponent map.
func mapSlate(date string, payload scoreboardResponse) domain.DaySlate {
	slate := domain.DaySlate{
		Date:      date,
		Teams:     domain.NewTeamSet(),
		Opponents: make(map[domain.TeamCode]domain.TeamCode),
	}

	for _, event := range payload.Events {
		for _, comp := range event.Competitions {
			codes := make([]domain.TeamCode, 0, len(comp.Competitors))
			for _, competitor := range comp.Competitors {
				if competitor.Team.Abbreviation == "" {
					continue
				}
				code := domain.NormalizeTeam(competitor.Team.Abbreviation)
				slate.Teams[code] = struct{}{}
				codes = append(codes, code)
			}
			if len(codes) == 2 {
				slate.Opponents[codes[0]] = codes[1]
				slate.Opponents[codes[1]] = codes[0]
			}
		}
	}

	return slate
}

// mapStandings pulls the winPercent stat for every team across all groups.
func mapStandings(payload standingsResponse) domain.SOSMap {
	sos := make(domain.SOSMap)
	for _, group := range payload.Children {
		for _, entry := range group.Standings.Entries {
			if entry.Team.Abbreviation == "" {
				continue
			}
			for _, stat := range entry.Stats {
				if stat.Name == statWinPercent {
					sos[domain.NormalizeTeam(entry.Team.Abbreviation)] = stat.Value
					break
				}
			}
		}
	}
	return sos
}
