package calendar

// Bindings maps a cell date to the events that fall on it.
type Bindings map[Date][]Event

// On returns the events bound to d. A date with no events yields nil,
// which callers treat as an empty list.
func (b Bindings) On(d Date) []Event {
	return b[d]
}

// BindEvents groups events onto the cells whose date they fall on. Events
// keep their relative input order within a cell. Events with a missing or
// malformed date, or whose date is outside the grid, are not bound.
func BindEvents(cells []Cell, events []Event) Bindings {
	inGrid := make(map[Date]struct{}, len(cells))
	for _, c := range cells {
		inGrid[c.Date] = struct{}{}
	}

	b := make(Bindings)
	for _, e := range events {
		if !e.Date.Valid() {
			continue
		}
		if _, ok := inGrid[e.Date]; !ok {
			continue
		}
		b[e.Date] = append(b[e.Date], e)
	}
	return b
}

// Agenda lists the displayed month's events in date order. It walks the
// in-month cells in grid order, so events on the same day keep their
// input order.
func Agenda(cells []Cell, b Bindings) []Event {
	var out []Event
	for _, c := range cells {
		if !c.InMonth {
			continue
		}
		out = append(out, b.On(c.Date)...)
	}
	return out
}
