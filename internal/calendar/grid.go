package calendar

import "time"

const DaysPerWeek = 7

// BuildMonthGrid returns the cells of a month grid for the month that
// contains ref. The grid starts on weekStart on or before the 1st and ends
// on the day before weekStart on or after the last day, so its length is
// always a whole number of weeks.
func BuildMonthGrid(ref Date, weekStart time.Weekday, today Date) []Cell {
	month := MonthOf(ref)
	start := startOfWeek(month.First(), weekStart)
	end := endOfWeek(month.Last(), weekStart)

	var cells []Cell
	for d, i := start, 0; !end.Before(d); d, i = d.AddDays(1), i+1 {
		cells = append(cells, Cell{
			Date:         d,
			InMonth:      month.Contains(d),
			IsToday:      d == today,
			WeekdayIndex: i % DaysPerWeek,
		})
	}
	return cells
}

func startOfWeek(d Date, weekStart time.Weekday) Date {
	back := (int(d.Weekday()) - int(weekStart) + DaysPerWeek) % DaysPerWeek
	return d.AddDays(-back)
}

func endOfWeek(d Date, weekStart time.Weekday) Date {
	return startOfWeek(d, weekStart).AddDays(DaysPerWeek - 1)
}

// Weeks splits cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, len(cells)/DaysPerWeek)
	for i := 0; i+DaysPerWeek <= len(cells); i += DaysPerWeek {
		rows = append(rows, cells[i:i+DaysPerWeek])
	}
	return rows
}

// WeekdayOrder lists the weekdays of one grid row starting at weekStart.
func WeekdayOrder(weekStart time.Weekday) []time.Weekday {
	days := make([]time.Weekday, DaysPerWeek)
	for i := range days {
		days[i] = time.Weekday((int(weekStart) + i) % DaysPerWeek)
	}
	return days
}
