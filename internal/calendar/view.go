package calendar

import "time"

// MonthView is everything needed to draw one displayed month.
type MonthView struct {
	Month     Month
	WeekStart time.Weekday
	Cells     []Cell
	Bindings  Bindings
	Agenda    []Event
}

// NewMonthView builds the grid for cursor, binds events onto it and
// derives the agenda from the same binding.
func NewMonthView(cursor Month, events []Event, today Date, weekStart time.Weekday) MonthView {
	cells := BuildMonthGrid(cursor.First(), weekStart, today)
	b := BindEvents(cells, events)
	return MonthView{
		Month:     cursor,
		WeekStart: weekStart,
		Cells:     cells,
		Bindings:  b,
		Agenda:    Agenda(cells, b),
	}
}

func (v MonthView) Weeks() [][]Cell {
	return Weeks(v.Cells)
}

func (v MonthView) Prev() Month { return v.Month.AddMonths(-1) }
func (v MonthView) Next() Month { return v.Month.AddMonths(1) }

// ParseWeekStart accepts "sunday" or "monday".
func ParseWeekStart(s string) (time.Weekday, bool) {
	switch s {
	case "", "sunday", "sun":
		return time.Sunday, true
	case "monday", "mon":
		return time.Monday, true
	}
	return time.Sunday, false
}
