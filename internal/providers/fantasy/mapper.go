package fantasy

import (
	"strings"

	"fantasy-gm-service/internal/domain"
)

// proTeamNames maps ESPN's numeric pro team ids to the abbreviations the
// fantasy API historically used. Several differ from the scoreboard's
// spelling (GS, PHL, UTAH); team normalization collapses them downstream.
var proTeamNames = map[int]string{
	0:  "FA",
	1:  "ATL",
	2:  "BOS",
	3:  "NO",
	4:  "CHI",
	5:  "CLE",
	6:  "DAL",
	7:  "DEN",
	8:  "DET",
	9:  "GS",
	10: "HOU",
	11: "IND",
	12: "LAC",
	13: "LAL",
	14: "MIA",
	15: "MIL",
	16: "MIN",
	17: "BKN",
	18: "NY",
	19: "ORL",
	20: "PHL",
	21: "PHO",
	22: "POR",
	23: "SAC",
	24: "SA",
	25: "OKC",
	26: "UTAH",
	27: "WSH",
	28: "TOR",
	29: "MEM",
	30: "CHA",
}

var positionNames = map[int]string{
	1: "PG",
	2: "SG",
	3: "SF",
	4: "PF",
	5: "C",
}

var lineupSlotNames = map[int]string{
	0:  "PG",
	1:  "SG",
	2:  "SF",
	3:  "PF",
	4:  "C",
	5:  "G",
	6:  "F",
	11: "UTIL",
	12: domain.SlotBench,
	13: domain.SlotInjuredReserve,
}

// Stat ids as the averageStats map keys them.
const (
	statPoints        = "0"
	statBlocks        = "1"
	statSteals        = "2"
	statAssists       = "3"
	statRebounds      = "6"
	statTurnovers     = "11"
	statFGM           = "13"
	statFGA           = "14"
	statFTM           = "15"
	statFTA           = "16"
	statThrees        = "17"
	statDoubleDoubles = "37"
	statMinutes       = "40"
)

func proTeamName(id int) string {
	if name, ok := proTeamNames[id]; ok {
		return name
	}
	return ""
}

func positionName(id int) string {
	if name, ok := positionNames[id]; ok {
		return name
	}
	return "UTIL"
}

func lineupSlotName(id int) string {
	if name, ok := lineupSlotNames[id]; ok {
		return name
	}
	return "UTIL"
}

// mapStatLine converts an averageStats map into a domain line. Missing keys
// read as zero.
func mapStatLine(avg map[string]float64) domain.StatLine {
	return domain.StatLine{
		Points:              avg[statPoints],
		Rebounds:            avg[statRebounds],
		Assists:             avg[statAssists],
		Steals:              avg[statSteals],
		Blocks:              avg[statBlocks],
		ThreesMade:          avg[statThrees],
		Turnovers:           avg[statTurnovers],
		DoubleDoubles:       avg[statDoubleDoubles],
		FieldGoalsMade:      avg[statFGM],
		FieldGoalsAttempted: avg[statFGA],
		FreeThrowsMade:      avg[statFTM],
		FreeThrowsAttempted: avg[statFTA],
		Minutes:             avg[statMinutes],
	}
}

// seasonAverages picks the season average split (source 0, split 0) out of the
// stat entries a player carries.
func seasonAverages(stats []playerStatsJSON) domain.StatLine {
	for _, s := range stats {
		if s.StatSourceID == 0 && s.StatSplitTypeID == 0 && len(s.AverageStats) > 0 {
			return mapStatLine(s.AverageStats)
		}
	}
	return domain.StatLine{}
}

func mapRosterEntry(entry rosterEntryJSON) domain.RosterEntry {
	player := entry.PlayerPoolEntry.Player
	return domain.RosterEntry{
		PlayerID:     player.ID,
		Name:         player.FullName,
		Position:     positionName(player.DefaultPositionID),
		ProTeam:      proTeamName(player.ProTeamID),
		LineupSlot:   lineupSlotName(entry.LineupSlotID),
		InjuryStatus: player.InjuryStatus,
		Averages:     seasonAverages(player.Stats),
	}
}

func mapTeam(team teamJSON) domain.FantasyTeam {
	roster := make([]domain.RosterEntry, 0, len(team.Roster.Entries))
	for _, entry := range team.Roster.Entries {
		roster = append(roster, mapRosterEntry(entry))
	}
	return domain.FantasyTeam{
		ID:     team.ID,
		Name:   teamDisplayName(team),
		Roster: roster,
	}
}

// teamDisplayName handles both the single name field newer seasons use and the
// location/nickname split of older ones.
func teamDisplayName(team teamJSON) string {
	if team.Name != "" {
		return team.Name
	}
	return strings.TrimSpace(team.Location + " " + team.Nickname)
}

// mapScoreByStat converts a matchup side's cumulative score into a stat line.
func mapScoreByStat(scores map[string]statScoreJSON) domain.StatLine {
	avg := make(map[string]float64, len(scores))
	for id, s := range scores {
		avg[id] = s.Score
	}
	return mapStatLine(avg)
}

// mapMatchups joins schedule entries for the current matchup period with the
// teams' rosters. Bye entries (missing side) are skipped.
func mapMatchups(payload leagueResponse) []domain.Matchup {
	teams := make(map[int]domain.FantasyTeam, len(payload.Teams))
	for _, team := range payload.Teams {
		teams[team.ID] = mapTeam(team)
	}

	current := payload.Status.CurrentMatchupPeriod
	matchups := make([]domain.Matchup, 0)
	for _, m := range payload.Schedule {
		if m.MatchupPeriodID != current {
			continue
		}
		home, homeOK := teams[m.Home.TeamID]
		away, awayOK := teams[m.Away.TeamID]
		if !homeOK || !awayOK {
			continue
		}
		matchups = append(matchups, domain.Matchup{
			Week: m.MatchupPeriodID,
			Home: domain.MatchupSide{Team: home, Totals: mapScoreByStat(m.Home.CumulativeScore.ScoreByStat)},
			Away: domain.MatchupSide{Team: away, Totals: mapScoreByStat(m.Away.CumulativeScore.ScoreByStat)},
		})
	}
	return matchups
}

func mapFreeAgent(entry playerPoolEntryJSON) domain.FreeAgent {
	player := entry.Player
	return domain.FreeAgent{
		RosterEntry: domain.RosterEntry{
			PlayerID:     player.ID,
			Name:         player.FullName,
			Position:     positionName(player.DefaultPositionID),
			ProTeam:      proTeamName(player.ProTeamID),
			InjuryStatus: player.InjuryStatus,
			Averages:     seasonAverages(player.Stats),
		},
		OnWaivers:     entry.Status == "WAIVERS",
		PercentOwned:  player.Ownership.PercentOwned,
		PercentChange: player.Ownership.PercentChange,
	}
}
