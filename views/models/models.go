package models

// EventView represents an event chip or agenda row for template rendering
type EventView struct {
	ID       int64
	Title    string
	Date     string
	DayLabel string // locale agenda label, e.g. 1月8日 (木)
	Category string
	Tone     string
	Notes    string // rendered HTML, may be empty
}

// CellView represents one grid square
type CellView struct {
	Date    string
	Day     int
	InMonth bool
	IsToday bool
	Events  []EventView
}

// WeekdayView is one column header
type WeekdayView struct {
	Label string
	Class string // "sun", "sat" or empty
}

// MonthView represents the whole calendar widget
type MonthView struct {
	Month         string // YYYY-MM
	Title         string
	Prev          string
	Next          string
	TodayLabel    string
	AgendaHeading string
	Weekdays      []WeekdayView
	Weeks         [][]CellView
	Agenda        []EventView
}
