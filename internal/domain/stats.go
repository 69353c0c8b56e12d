package domain

// Category names as leagues configure them.
const (
	CatPoints        = "PTS"
	CatRebounds      = "REB"
	CatAssists       = "AST"
	CatSteals        = "STL"
	CatBlocks        = "BLK"
	CatThrees        = "3PTM"
	CatTurnovers     = "TO"
	CatDoubleDoubles = "DD"
	CatFieldGoalPct  = "FG%"
	CatFreeThrowPct  = "FT%"
)

// DefaultCategories is the standard 9-cat configuration.
var DefaultCategories = []string{
	CatPoints, CatRebounds, CatAssists, CatSteals, CatBlocks,
	CatThrees, CatFieldGoalPct, CatFreeThrowPct, CatTurnovers,
}

// StatLine holds raw counting stats for a player or lineup. Percentages are
// derived from makes/attempts so lines stay additive.
type StatLine struct {
	Points              float64 `json:"pts"`
	Rebounds            float64 `json:"reb"`
	Assists             float64 `json:"ast"`
	Steals              float64 `json:"stl"`
	Blocks              float64 `json:"blk"`
	ThreesMade          float64 `json:"threes"`
	Turnovers           float64 `json:"to"`
	DoubleDoubles       float64 `json:"dd"`
	FieldGoalsMade      float64 `json:"fgm"`
	FieldGoalsAttempted float64 `json:"fga"`
	FreeThrowsMade      float64 `json:"ftm"`
	FreeThrowsAttempted float64 `json:"fta"`
	Minutes             float64 `json:"min"`
}

// FieldGoalPct returns FGM/FGA, or 0 with no attempts.
func (s StatLine) FieldGoalPct() float64 {
	if s.FieldGoalsAttempted == 0 {
		return 0
	}
	return s.FieldGoalsMade / s.FieldGoalsAttempted
}

// FreeThrowPct returns FTM/FTA, or 0 with no attempts.
func (s StatLine) FreeThrowPct() float64 {
	if s.FreeThrowsAttempted == 0 {
		return 0
	}
	return s.FreeThrowsMade / s.FreeThrowsAttempted
}

// Category resolves a configured category name to its value. Unknown
// categories resolve to 0 rather than failing the comparison.
func (s StatLine) Category(name string) float64 {
	switch name {
	case CatPoints:
		return s.Points
	case CatRebounds:
		return s.Rebounds
	case CatAssists:
		return s.Assists
	case CatSteals:
		return s.Steals
	case CatBlocks:
		return s.Blocks
	case CatThrees:
		return s.ThreesMade
	case CatTurnovers:
		return s.Turnovers
	case CatDoubleDoubles:
		return s.DoubleDoubles
	case CatFieldGoalPct:
		return s.FieldGoalPct()
	case CatFreeThrowPct:
		return s.FreeThrowPct()
	default:
		return 0
	}
}

// Add accumulates another line into s.
func (s *StatLine) Add(other StatLine) {
	s.Points += other.Points
	s.Rebounds += other.Rebounds
	s.Assists += other.Assists
	s.Steals += other.Steals
	s.Blocks += other.Blocks
	s.ThreesMade += other.ThreesMade
	s.Turnovers += other.Turnovers
	s.DoubleDoubles += other.DoubleDoubles
	s.FieldGoalsMade += other.FieldGoalsMade
	s.FieldGoalsAttempted += other.FieldGoalsAttempted
	s.FreeThrowsMade += other.FreeThrowsMade
	s.FreeThrowsAttempted += other.FreeThrowsAttempted
	s.Minutes += other.Minutes
}

// FantasyScore collapses a line into a single comparable number:
// PTS + 1.2*REB + 1.5*AST + 2*STL + 2*BLK, plus a double-double bonus when the
// league counts DD.
func FantasyScore(s StatLine, categories []string) float64 {
	score := s.Points + s.Rebounds*1.2 + s.Assists*1.5 + s.Steals*2 + s.Blocks*2
	for _, cat := range categories {
		if cat == CatDoubleDoubles {
			score += s.DoubleDoubles * 5
			break
		}
	}
	return score
}
