package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareCategoriesOutcomes(t *testing.T) {
	mine := StatLine{Points: 500, Rebounds: 100, Turnovers: 40}
	theirs := StatLine{Points: 300, Rebounds: 100, Turnovers: 30}

	cmp := CompareCategories(mine, theirs, []string{CatPoints, CatRebounds, CatTurnovers}, 0)

	require.Len(t, cmp.Lines, 3)
	assert.Equal(t, OutcomeWin, cmp.Lines[0].Outcome)
	assert.Equal(t, OutcomeTie, cmp.Lines[1].Outcome)
	// Fewer turnovers is better, so 40 vs 30 is a loss.
	assert.Equal(t, OutcomeLoss, cmp.Lines[2].Outcome)
	assert.Equal(t, 1, cmp.Wins)
	assert.Equal(t, 1, cmp.Losses)
	assert.Equal(t, 1, cmp.Ties)
}

func TestCompareCategoriesVolatilityAndNeeds(t *testing.T) {
	// Down 30 points with 2 days left: within 35*2 swing, so volatile and a need.
	mine := StatLine{Points: 270}
	theirs := StatLine{Points: 300}

	cmp := CompareCategories(mine, theirs, []string{CatPoints}, 2)

	require.Len(t, cmp.Lines, 1)
	assert.True(t, cmp.Lines[0].Volatile)
	assert.Equal(t, []string{CatPoints}, cmp.Needs)
	assert.Equal(t, 0, cmp.Floor)
	assert.Equal(t, 1, cmp.Ceiling)
}

func TestCompareCategoriesSafeLeadIsNotANeed(t *testing.T) {
	// Down 200 points with 1 day left: out of reach.
	mine := StatLine{Points: 100}
	theirs := StatLine{Points: 300}

	cmp := CompareCategories(mine, theirs, []string{CatPoints}, 1)

	assert.False(t, cmp.Lines[0].Volatile)
	assert.Empty(t, cmp.Needs)
	assert.Equal(t, 0, cmp.Ceiling)
}

func TestCompareCategoriesPercentageMargins(t *testing.T) {
	mine := StatLine{FieldGoalsMade: 48, FieldGoalsAttempted: 100}
	theirs := StatLine{FieldGoalsMade: 50, FieldGoalsAttempted: 100}

	// Early week: a 2-point percentage gap is volatile.
	early := CompareCategories(mine, theirs, []string{CatFieldGoalPct}, 6)
	assert.True(t, early.Lines[0].Volatile)

	// Season over: nothing can move.
	done := CompareCategories(mine, theirs, []string{CatFieldGoalPct}, 0)
	assert.False(t, done.Lines[0].Volatile)
}

func TestCompareCategoriesProjectionBand(t *testing.T) {
	// Safe win, volatile win, volatile loss, tie.
	mine := StatLine{Points: 900, Rebounds: 105, Assists: 50, Steals: 10}
	theirs := StatLine{Points: 300, Rebounds: 100, Assists: 55, Steals: 10}

	cmp := CompareCategories(mine, theirs,
		[]string{CatPoints, CatRebounds, CatAssists, CatSteals}, 1)

	assert.Equal(t, 2, cmp.Wins)
	assert.Equal(t, 1, cmp.Losses)
	assert.Equal(t, 1, cmp.Ties)
	// Floor sheds the volatile rebounds win; ceiling flips assists and the tie.
	assert.Equal(t, 1, cmp.Floor)
	assert.Equal(t, 4, cmp.Ceiling)
	assert.Equal(t, []string{CatAssists}, cmp.Needs)
}

func TestCompareCategoriesBandStaysWithinCategoryCount(t *testing.T) {
	// Every category is a narrow win: the ceiling must not count the volatile
	// wins twice, and the floor concedes all of them.
	mine := StatLine{Points: 310, Rebounds: 85}
	theirs := StatLine{Points: 300, Rebounds: 80}
	cats := []string{CatPoints, CatRebounds}

	cmp := CompareCategories(mine, theirs, cats, 2)

	require.Len(t, cmp.Lines, 2)
	assert.True(t, cmp.Lines[0].Volatile)
	assert.True(t, cmp.Lines[1].Volatile)
	assert.Equal(t, 2, cmp.Wins)
	assert.Equal(t, 0, cmp.Floor)
	assert.Equal(t, 2, cmp.Ceiling)
	assert.LessOrEqual(t, cmp.Floor, cmp.Wins)
	assert.LessOrEqual(t, cmp.Wins, cmp.Ceiling)
	assert.LessOrEqual(t, cmp.Ceiling, len(cats))
}

func TestCompareCategoriesDeterministic(t *testing.T) {
	mine := StatLine{Points: 270, Rebounds: 90}
	theirs := StatLine{Points: 300, Rebounds: 80}
	cats := []string{CatPoints, CatRebounds}

	first := CompareCategories(mine, theirs, cats, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CompareCategories(mine, theirs, cats, 3))
	}
}
