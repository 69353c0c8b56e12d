package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Name         string                `json:"name"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	ID          string               `json:"id"`
	Competitors []competitorResponse `json:"competitors"`
}

type competitorResponse struct {
	HomeAway string       `json:"homeAway"`
	Team     teamResponse `json:"team"`
}

type teamResponse struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type standingsResponse struct {
	Children []standingsGroup `json:"children"`
}

type standingsGroup struct {
	Name      string         `json:"name"`
	Standings standingsTable `json:"standings"`
}

type standingsTable struct {
	Entries []standingsEntry `json:"entries"`
}

type standingsEntry struct {
	Team  teamResponse    `json:"team"`
	Stats []standingsStat `json:"stats"`
}

type standingsStat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
