package events

import (
	"fmt"
	"io"
	"strings"
	"time"

	"schoolcal/internal/calendar"

	"github.com/emersion/go-ical"
)

const icsProductID = "-//SchoolCal//Calendar//JA"

// BuildICS returns an iCalendar with one all-day VEVENT per event.
// Events without a usable date are left out.
func BuildICS(name string, evs []calendar.Event, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)
	cal.Props.SetText("X-WR-CALNAME", name)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	for _, e := range evs {
		if !e.Date.Valid() {
			continue
		}
		start := e.Date.Time(time.UTC)

		vevent := ical.NewEvent()
		vevent.Props.SetText(ical.PropUID, fmt.Sprintf("%d-%s@schoolcal", e.ID, e.Date))
		vevent.Props.SetText(ical.PropSummary, e.Title)
		vevent.Props.SetText(ical.PropCategories, e.Category.String())
		if e.Notes != "" {
			vevent.Props.SetText(ical.PropDescription, e.Notes)
		}
		vevent.Props.SetDate(ical.PropDateTimeStart, start)
		vevent.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())

		cal.Children = append(cal.Children, vevent.Component)
	}
	return cal
}

// WriteICS encodes the displayed month's agenda as iCalendar. A month
// without events still yields a calendar with its header properties.
func (s *Service) WriteICS(w io.Writer, cursor calendar.Month) error {
	cal := BuildICS(s.locale.MonthTitle(cursor), s.Agenda(cursor), s.now())
	if len(cal.Children) == 0 {
		return writeEmptyICS(w, cal)
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

// writeEmptyICS writes a VCALENDAR with no components. The go-ical encoder
// refuses those, so the header properties are written directly.
func writeEmptyICS(w io.Writer, cal *ical.Calendar) error {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	for _, name := range []string{ical.PropVersion, ical.PropProductID, "X-WR-CALNAME", ical.PropCalendarScale} {
		if prop := cal.Props.Get(name); prop != nil {
			fmt.Fprintf(&b, "%s:%s\r\n", name, prop.Value)
		}
	}
	b.WriteString("END:VCALENDAR\r\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}
