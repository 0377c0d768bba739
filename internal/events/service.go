package events

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"schoolcal/internal/calendar"

	"github.com/yuin/goldmark"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

// Options configures a Service.
type Options struct {
	Locale    calendar.Locale
	WeekStart time.Weekday
	Location  *time.Location
	Initial   *calendar.Month // nil means the current month
	Now       func() time.Time
}

// Service answers month, agenda and event queries over the event snapshot
// loaded at startup. The snapshot is never mutated, so a Service is safe
// for concurrent use.
type Service struct {
	events []calendar.Event
	byID   map[int64]calendar.Event
	locale calendar.Locale
	start  time.Weekday
	loc    *time.Location
	first  *calendar.Month
	now    func() time.Time
	md     goldmark.Markdown
}

// NewService loads all events from src.
func NewService(ctx context.Context, src Source, opts Options) (*Service, error) {
	evs, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	if opts.Locale == nil {
		opts.Locale = calendar.Japanese{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	byID := make(map[int64]calendar.Event, len(evs))
	for _, e := range evs {
		byID[e.ID] = e
	}

	return &Service{
		events: evs,
		byID:   byID,
		locale: opts.Locale,
		start:  opts.WeekStart,
		loc:    opts.Location,
		first:  opts.Initial,
		now:    opts.Now,
		md:     goldmark.New(),
	}, nil
}

func (s *Service) Locale() calendar.Locale { return s.locale }

func (s *Service) WeekStart() time.Weekday { return s.start }

// Now returns the current time in the configured location.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) Today() calendar.Date {
	return calendar.DateOf(s.Now())
}

// InitialMonth is the cursor a fresh page starts on.
func (s *Service) InitialMonth() calendar.Month {
	if s.first != nil {
		return *s.first
	}
	return calendar.MonthOf(s.Today())
}

// ResolveMonth parses a YYYY-MM query value, falling back to the initial
// month when empty.
func (s *Service) ResolveMonth(raw string) (calendar.Month, error) {
	if raw == "" {
		return s.InitialMonth(), nil
	}
	return calendar.ParseMonth(raw)
}

// Navigate applies a to cursor.
func (s *Service) Navigate(cursor calendar.Month, a calendar.Action) calendar.Month {
	return calendar.Navigate(cursor, a, s.Now())
}

// Month builds the grid, bindings and agenda for cursor.
func (s *Service) Month(cursor calendar.Month) calendar.MonthView {
	return calendar.NewMonthView(cursor, s.events, s.Today(), s.start)
}

// Agenda returns the displayed month's events in date order.
func (s *Service) Agenda(cursor calendar.Month) []calendar.Event {
	return s.Month(cursor).Agenda
}

// Get retrieves an event by ID.
func (s *Service) Get(id int64) (calendar.Event, error) {
	e, ok := s.byID[id]
	if !ok {
		return calendar.Event{}, ErrEventNotFound
	}
	return e, nil
}

// Categories returns every category with its event count.
func (s *Service) Categories() []CategoryCount {
	counts := make(map[calendar.Category]int)
	for _, e := range s.events {
		counts[e.Category]++
	}

	out := make([]CategoryCount, 0, len(calendar.Categories()))
	for _, c := range calendar.Categories() {
		t := c.Treatment()
		out = append(out, CategoryCount{
			Name:  c.String(),
			Tone:  string(t.Tone),
			Label: t.Label,
			Count: counts[c],
		})
	}
	return out
}

// Count returns the number of loaded events.
func (s *Service) Count() int {
	return len(s.events)
}

// RenderMarkdown converts event notes to HTML
func (s *Service) RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(content), &buf); err != nil {
		return html.EscapeString(content)
	}
	return buf.String()
}

// MonthResult converts a month view into its API shape.
func (s *Service) MonthResult(v calendar.MonthView) MonthResult {
	res := MonthResult{
		Month:     v.Month.String(),
		Title:     s.locale.MonthTitle(v.Month),
		Prev:      v.Prev().String(),
		Next:      v.Next().String(),
		WeekStart: v.WeekStart.String(),
	}
	for _, wd := range calendar.WeekdayOrder(v.WeekStart) {
		res.Weekdays = append(res.Weekdays, s.locale.WeekdayShort(wd))
	}
	for _, week := range v.Weeks() {
		row := make([]CellResult, len(week))
		for i, c := range week {
			evs := v.Bindings.On(c.Date)
			if evs == nil {
				evs = []calendar.Event{}
			}
			row[i] = CellResult{
				Date:    c.Date.String(),
				InMonth: c.InMonth,
				IsToday: c.IsToday,
				Events:  evs,
			}
		}
		res.Weeks = append(res.Weeks, row)
	}
	res.Agenda = s.AgendaResult(v.Agenda)
	return res
}

func (s *Service) AgendaResult(evs []calendar.Event) []AgendaItemResult {
	out := make([]AgendaItemResult, len(evs))
	for i, e := range evs {
		out[i] = AgendaItemResult{Event: e, Label: s.locale.AgendaDate(e.Date)}
	}
	return out
}
