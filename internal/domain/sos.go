package domain

// SOSMap holds win percentage per team, the proxy for opponent difficulty.
type SOSMap map[TeamCode]float64

// Opponent difficulty buckets.
const (
	DifficultyHard    = "hard"
	DifficultyEasy    = "easy"
	DifficultyNeutral = "neutral"
)

// backupWinPct is the compiled-in fallback so difficulty tags survive a dead
// standings endpoint. Refreshed by hand when the league landscape shifts.
var backupWinPct = SOSMap{
	"BOS": 0.80, "OKC": 0.75, "DEN": 0.70, "MIN": 0.70, "LAC": 0.65, "CLE": 0.65,
	"NYK": 0.60, "PHX": 0.60, "MIL": 0.60, "NOP": 0.60, "PHI": 0.55, "DAL": 0.55,
	"SAC": 0.55, "IND": 0.55, "MIA": 0.55, "ORL": 0.55, "LAL": 0.50, "GSW": 0.50,
	"HOU": 0.45, "CHI": 0.45, "ATL": 0.40, "UTA": 0.40, "BKN": 0.35, "TOR": 0.30,
	"MEM": 0.30, "POR": 0.25, "CHA": 0.25, "SAS": 0.20, "WAS": 0.15, "DET": 0.15,
}

// MergeWithBackup fills gaps in a fetched SOS map from the backup table. A nil
// map yields the full backup.
func MergeWithBackup(fetched SOSMap) SOSMap {
	merged := make(SOSMap, len(backupWinPct))
	for code, pct := range fetched {
		merged[code] = pct
	}
	for code, pct := range backupWinPct {
		if _, ok := merged[code]; !ok {
			merged[code] = pct
		}
	}
	return merged
}

// Difficulty buckets an opponent's win percentage: strong opponents sit at or
// above .600, weak ones at or below .400.
func Difficulty(winPct float64) string {
	switch {
	case winPct >= 0.60:
		return DifficultyHard
	case winPct <= 0.40:
		return DifficultyEasy
	default:
		return DifficultyNeutral
	}
}

// DifficultyFor rates an opponent by raw abbreviation; unknown opponents rate
// neutral, and an empty opponent (no game) rates neutral as well.
func (m SOSMap) DifficultyFor(raw string) string {
	if raw == "" {
		return DifficultyNeutral
	}
	pct, ok := m[NormalizeTeam(raw)]
	if !ok {
		pct = 0.5
	}
	return Difficulty(pct)
}
