package domain

// DayCount is the number of roster entries active on one date.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// WeeklyActivity folds a roster against a week's schedule: for every date, the
// count of entries whose pro team plays that day. Two players on the same pro
// team count individually. The result follows the schedule's day order and is
// independent of roster order; an empty roster or an empty day yields zero.
func WeeklyActivity(roster []RosterEntry, sched DaySchedule) []DayCount {
	counts := make([]DayCount, 0, len(sched))
	for _, day := range sched {
		n := 0
		for _, entry := range roster {
			if PlaysOn(entry.ProTeam, day.Teams) {
				n++
			}
		}
		counts = append(counts, DayCount{Date: day.Date, Count: n})
	}
	return counts
}

// CapCounts clamps each day's count at the league's starting-slot limit; a
// manager cannot start more players than the lineup allows. A limit <= 0
// leaves counts untouched.
func CapCounts(counts []DayCount, limit int) []DayCount {
	if limit <= 0 {
		return counts
	}
	capped := make([]DayCount, len(counts))
	for i, dc := range counts {
		if dc.Count > limit {
			dc.Count = limit
		}
		capped[i] = dc
	}
	return capped
}

// TotalCount sums daily counts across the week.
func TotalCount(counts []DayCount) int {
	total := 0
	for _, dc := range counts {
		total += dc.Count
	}
	return total
}
