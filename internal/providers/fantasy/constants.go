package fantasy

import "time"

const (
	providerName = "espn-fantasy"

	defaultBaseURL     = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/fba"
	defaultHTTPTimeout = 10 * time.Second

	viewTeam         = "mTeam"
	viewRoster       = "mRoster"
	viewMatchupScore = "mMatchupScore"
	viewPlayerInfo   = "kona_player_info"

	filterHeader = "x-fantasy-filter"

	cookieSWID   = "SWID"
	cookieEspnS2 = "espn_s2"

	defaultFreeAgentLimit = 50
)
