package domain

import "math"

// Category outcomes from the user's perspective.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeTie  = "tie"
)

// dailySwing estimates how much a counting category can move in one average
// day of games, calibrated against full-week category totals. The margin a
// lead needs to be considered safe is swing * remaining days.
var dailySwing = map[string]float64{
	CatPoints:        35,
	CatRebounds:      12,
	CatAssists:       9,
	CatSteals:        3.5,
	CatBlocks:        3.5,
	CatThrees:        4,
	CatTurnovers:     4,
	CatDoubleDoubles: 1.5,
}

const defaultSwing = 5

// CategoryLine is one category's head-to-head state.
type CategoryLine struct {
	Category string  `json:"category"`
	Mine     float64 `json:"mine"`
	Theirs   float64 `json:"theirs"`
	Diff     float64 `json:"diff"`
	Outcome  string  `json:"outcome"`
	Volatile bool    `json:"volatile"`
	Margin   float64 `json:"margin"`
}

// Comparison is the full category-by-category matchup picture, including the
// win projection band for the rest of the week.
type Comparison struct {
	Lines   []CategoryLine `json:"lines"`
	Wins    int            `json:"wins"`
	Losses  int            `json:"losses"`
	Ties    int            `json:"ties"`
	Floor   int            `json:"floor"`
	Ceiling int            `json:"ceiling"`
	Needs   []string       `json:"needs"`
}

// CompareCategories scores each configured category from the user's side.
// Turnovers invert (fewer is better). A category is volatile when the margin
// is within reach given the remaining play days; volatile losses become
// "needs" for the waiver scan. Floor assumes every volatile category flips
// against the user, ceiling assumes every volatile loss and every tie flips
// in their favor.
func CompareCategories(mine, theirs StatLine, categories []string, remainingDays int) Comparison {
	if remainingDays < 0 {
		remainingDays = 0
	}

	cmp := Comparison{Lines: make([]CategoryLine, 0, len(categories))}
	volatileWins := 0

	for _, cat := range categories {
		mv := mine.Category(cat)
		tv := theirs.Category(cat)

		diff := mv - tv
		if cat == CatTurnovers {
			diff = tv - mv
		}

		line := CategoryLine{
			Category: cat,
			Mine:     mv,
			Theirs:   tv,
			Diff:     diff,
			Margin:   safetyMargin(cat, remainingDays),
		}

		switch {
		case diff > 0:
			line.Outcome = OutcomeWin
			cmp.Wins++
		case diff < 0:
			line.Outcome = OutcomeLoss
			cmp.Losses++
		default:
			line.Outcome = OutcomeTie
			cmp.Ties++
		}

		if math.Abs(diff) <= line.Margin {
			line.Volatile = true
			switch line.Outcome {
			case OutcomeWin:
				volatileWins++
			case OutcomeLoss:
				cmp.Ceiling++
				cmp.Needs = append(cmp.Needs, cat)
			}
		}

		cmp.Lines = append(cmp.Lines, line)
	}

	cmp.Floor = cmp.Wins - volatileWins
	cmp.Ceiling += cmp.Wins + cmp.Ties
	return cmp
}

// safetyMargin is the lead size below which a category is still in play.
// Percentage categories tighten as the week runs out; counting categories
// scale with the daily swing.
func safetyMargin(category string, remainingDays int) float64 {
	if category == CatFieldGoalPct || category == CatFreeThrowPct {
		if remainingDays > 4 {
			return 0.10
		}
		return 0.02 * float64(remainingDays)
	}
	swing, ok := dailySwing[category]
	if !ok {
		swing = defaultSwing
	}
	return swing * float64(remainingDays)
}
