package calendar

import "time"

// Day describes one cell of the month grid. A zero Day (Day == 0) is a
// leading or trailing pad cell.
type Day struct {
	Day        int
	Count      int
	IsToday    bool
	IsSelected bool
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks returns how many pad cells precede day 1 in a Monday-first
// week layout.
func LeadingBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return (int(first.Weekday()) + 6) % 7 // weekday 0 = Monday
}

// MonthGrid lays the month out as Monday-first weeks. density maps
// day-of-month to event count, selected is a YYYY-MM-DD day or empty, and
// now marks today's cell.
func MonthGrid(year int, month time.Month, density map[int]int, selected string, now time.Time) [][]Day {
	days := DaysIn(year, month)
	blanks := LeadingBlanks(year, month)

	today := 0
	if now.Year() == year && now.Month() == month {
		today = now.Day()
	}

	cells := make([]Day, blanks, blanks+days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		cells = append(cells, Day{
			Day:        day,
			Count:      density[day],
			IsToday:    day == today,
			IsSelected: selected != "" && date.Format("2006-01-02") == selected,
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Day{})
	}

	weeks := make([][]Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
