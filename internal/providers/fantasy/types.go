package fantasy

type leagueResponse struct {
	Status   statusJSON    `json:"status"`
	Teams    []teamJSON    `json:"teams"`
	Schedule []matchupJSON `json:"schedule"`
}

type statusJSON struct {
	CurrentMatchupPeriod int `json:"currentMatchupPeriod"`
	LatestScoringPeriod  int `json:"latestScoringPeriod"`
}

type teamJSON struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Nickname string     `json:"nickname"`
	Roster   rosterJSON `json:"roster"`
}

type rosterJSON struct {
	Entries []rosterEntryJSON `json:"entries"`
}

type rosterEntryJSON struct {
	PlayerID        int                 `json:"playerId"`
	LineupSlotID    int                 `json:"lineupSlotId"`
	PlayerPoolEntry playerPoolEntryJSON `json:"playerPoolEntry"`
}

type playerPoolEntryJSON struct {
	ID       int        `json:"id"`
	OnTeamID int        `json:"onTeamId"`
	Status   string     `json:"status"`
	Player   playerJSON `json:"player"`
}

type playerJSON struct {
	ID                int               `json:"id"`
	FullName          string            `json:"fullName"`
	DefaultPositionID int               `json:"defaultPositionId"`
	ProTeamID         int               `json:"proTeamId"`
	InjuryStatus      string            `json:"injuryStatus"`
	Ownership         ownershipJSON     `json:"ownership"`
	Stats             []playerStatsJSON `json:"stats"`
}

type ownershipJSON struct {
	PercentOwned  float64 `json:"percentOwned"`
	PercentChange float64 `json:"percentChange"`
}

type playerStatsJSON struct {
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	AverageStats    map[string]float64 `json:"averageStats"`
}

type matchupJSON struct {
	MatchupPeriodID int             `json:"matchupPeriodId"`
	Home            matchupSideJSON `json:"home"`
	Away            matchupSideJSON `json:"away"`
}

type matchupSideJSON struct {
	TeamID          int                 `json:"teamId"`
	TotalPoints     float64             `json:"totalPoints"`
	CumulativeScore cumulativeScoreJSON `json:"cumulativeScore"`
}

type cumulativeScoreJSON struct {
	ScoreByStat map[string]statScoreJSON `json:"scoreByStat"`
}

type statScoreJSON struct {
	Score float64 `json:"score"`
}

type playersResponse struct {
	Players []playerPoolEntryJSON `json:"players"`
}
