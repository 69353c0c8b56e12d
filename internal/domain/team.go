package domain

import "strings"

// TeamCode is the canonical 3-letter abbreviation for an NBA franchise.
type TeamCode string

// canonicalCodes maps every abbreviation spelling ESPN surfaces (fantasy
// pro-team names, scoreboard codes, legacy 2-letter forms) to one canonical
// code. Identity entries are listed so membership doubles as a roster of
// known codes.
var canonicalCodes = map[string]TeamCode{
	"PHI": "PHI", "PHL": "PHI", "76ERS": "PHI",
	"UTA": "UTA", "UTAH": "UTA", "UTH": "UTA",
	"NY": "NYK", "NYK": "NYK", "NYA": "NYK",
	"GS": "GSW", "GSW": "GSW", "GOL": "GSW",
	"NO": "NOP", "NOP": "NOP", "NOR": "NOP",
	"SA": "SAS", "SAS": "SAS", "SAN": "SAS",
	"PHO": "PHX", "PHX": "PHX",
	"WAS": "WAS", "WSH": "WAS",
	"CHA": "CHA", "CHO": "CHA",
	"BKN": "BKN", "BRK": "BKN", "BK": "BKN",
	"LAL": "LAL", "LAC": "LAC",
	"TOR": "TOR", "MEM": "MEM", "MIA": "MIA", "ORL": "ORL",
	"MIN": "MIN", "MIL": "MIL", "DAL": "DAL", "DEN": "DEN",
	"HOU": "HOU", "DET": "DET", "IND": "IND", "CLE": "CLE",
	"CHI": "CHI", "ATL": "ATL", "BOS": "BOS", "OKC": "OKC",
	"POR": "POR", "SAC": "SAC",
}

// NormalizeTeam converts any abbreviation variant to its canonical code
// (GS -> GSW, SA -> SAS). Unknown input is passed through unchanged so a new
// or misspelled code degrades to an uncounted entry instead of an error.
func NormalizeTeam(raw string) TeamCode {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	if code, ok := canonicalCodes[s]; ok {
		return code
	}
	return TeamCode(s)
}

// SameTeam reports whether two abbreviations refer to the same franchise.
func SameTeam(a, b string) bool {
	return NormalizeTeam(a) == NormalizeTeam(b)
}
