package espn

import "time"

const (
	providerName = "espn-scoreboard"

	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"

	scoreboardPath = "/scoreboard"
	standingsPath  = "/standings"

	statWinPercent = "winPercent"
)
