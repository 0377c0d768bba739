package events

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"schoolcal/internal/calendar"
)

var testNow = time.Date(2026, time.January, 20, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, src Source) *Service {
	t.Helper()
	jan := calendar.Month{Year: 2026, Month: time.January}
	svc, err := NewService(context.Background(), src, Options{
		Locale:    calendar.Japanese{},
		WeekStart: time.Sunday,
		Location:  time.UTC,
		Initial:   &jan,
		Now:       func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestMockSource(t *testing.T) {
	evs, err := MockSource{}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(evs) != 5 {
		t.Fatalf("Expected 5 mock events, got %d", len(evs))
	}
	for _, e := range evs {
		if !e.Date.Valid() {
			t.Errorf("Mock event %d has invalid date", e.ID)
		}
	}
}

func TestFileSource(t *testing.T) {
	path := writeFile(t, `
events:
  - id: 10
    title: 卒業式
    date: "2026-03-13"
    type: event
    notes: "**体育館**"
  - id: 11
    title: 日付なし
    type: exam
  - id: 12
    title: 壊れた日付
    date: "2026-02-30"
    type: holiday
`)

	evs, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(evs) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evs))
	}
	if evs[0].Date.String() != "2026-03-13" || evs[0].Category != calendar.General {
		t.Errorf("Unexpected first event %+v", evs[0])
	}
	if evs[1].Date.Valid() || evs[2].Date.Valid() {
		t.Error("Events with missing or malformed dates should keep a zero date")
	}
	if evs[2].Category != calendar.Holiday {
		t.Errorf("Expected holiday, got %s", evs[2].Category)
	}
}

func TestFileSourceUnknownType(t *testing.T) {
	path := writeFile(t, `
events:
  - id: 1
    title: 文化祭
    date: "2026-11-03"
    type: festival
`)

	_, err := FileSource{Path: path}.Load(context.Background())
	if !errors.Is(err, calendar.ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "nope.yaml")}.Load(context.Background())
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestServiceMonth(t *testing.T) {
	svc := newTestService(t, MockSource{})

	view := svc.Month(svc.InitialMonth())
	if len(view.Cells) != 35 {
		t.Fatalf("Expected 35 cells, got %d", len(view.Cells))
	}
	today := 0
	for _, c := range view.Cells {
		if c.IsToday {
			today++
			if c.Date.String() != "2026-01-20" {
				t.Errorf("Today marked on %s", c.Date)
			}
		}
	}
	if today != 1 {
		t.Errorf("Expected one today cell, got %d", today)
	}
	if len(view.Agenda) != 4 {
		t.Errorf("Expected 4 agenda items in January, got %d", len(view.Agenda))
	}
}

func TestServiceNavigate(t *testing.T) {
	svc := newTestService(t, MockSource{})
	jan := svc.InitialMonth()

	if got := svc.Navigate(jan, calendar.Next).String(); got != "2026-02" {
		t.Errorf("next: got %s", got)
	}
	if got := svc.Navigate(jan, calendar.Previous).String(); got != "2025-12" {
		t.Errorf("previous: got %s", got)
	}
	if got := svc.Navigate(calendar.Month{Year: 2030, Month: time.June}, calendar.Today).String(); got != "2026-01" {
		t.Errorf("today: got %s", got)
	}
}

func TestServiceInitialMonthDefaultsToToday(t *testing.T) {
	svc, err := NewService(context.Background(), MockSource{}, Options{
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if got := svc.InitialMonth().String(); got != "2026-10" {
		t.Errorf("Expected 2026-10, got %s", got)
	}
}

func TestServiceGet(t *testing.T) {
	svc := newTestService(t, MockSource{})

	e, err := svc.Get(2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Category != calendar.Holiday {
		t.Errorf("Expected holiday, got %s", e.Category)
	}
	if _, err := svc.Get(99); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("Expected ErrEventNotFound, got %v", err)
	}
}

func TestServiceCategories(t *testing.T) {
	svc := newTestService(t, MockSource{})

	counts := map[string]int{}
	for _, c := range svc.Categories() {
		counts[c.Name] = c.Count
	}
	want := map[string]int{"event": 1, "exam": 2, "holiday": 2}
	for name, n := range want {
		if counts[name] != n {
			t.Errorf("Category %s count = %d, want %d", name, counts[name], n)
		}
	}
}

func TestServiceRenderMarkdown(t *testing.T) {
	svc := newTestService(t, MockSource{})

	html := svc.RenderMarkdown("**体育館**")
	if !strings.Contains(html, "<strong>体育館</strong>") {
		t.Errorf("Expected bold markup, got %q", html)
	}
	if html := svc.RenderMarkdown("<script>alert(1)</script>"); strings.Contains(html, "<script>") {
		t.Errorf("Raw HTML should not pass through, got %q", html)
	}
}

func TestMonthResultCellsAlwaysHaveEventSlice(t *testing.T) {
	svc := newTestService(t, MockSource{})
	res := svc.MonthResult(svc.Month(svc.InitialMonth()))

	if res.Title != "2026年 1月" {
		t.Errorf("Unexpected title %q", res.Title)
	}
	if len(res.Weekdays) != 7 || res.Weekdays[0] != "日" {
		t.Errorf("Unexpected weekdays %v", res.Weekdays)
	}
	for _, week := range res.Weeks {
		for _, c := range week {
			if c.Events == nil {
				t.Fatalf("Cell %s has nil events", c.Date)
			}
		}
	}
	if res.Agenda[0].Label != "1月8日 (木)" {
		t.Errorf("Unexpected agenda label %q", res.Agenda[0].Label)
	}
}
