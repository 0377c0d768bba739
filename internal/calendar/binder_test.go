package calendar

import (
	"reflect"
	"testing"
	"time"
)

func sampleEvents(t *testing.T) []Event {
	t.Helper()
	return []Event{
		{ID: 1, Title: "始業式", Date: mustDate(t, "2026-01-08"), Category: General},
		{ID: 2, Title: "成人の日", Date: mustDate(t, "2026-01-12"), Category: Holiday},
		{ID: 3, Title: "実力テスト", Date: mustDate(t, "2026-01-20"), Category: Exam},
		{ID: 4, Title: "英語検定", Date: mustDate(t, "2026-01-24"), Category: Exam},
		{ID: 5, Title: "建国記念の日", Date: mustDate(t, "2026-02-11"), Category: Holiday},
	}
}

func TestBindEventsJanuary(t *testing.T) {
	cells := BuildMonthGrid(mustDate(t, "2026-01-01"), time.Sunday, Date{})
	b := BindEvents(cells, sampleEvents(t))

	got := b.On(mustDate(t, "2026-01-08"))
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("Expected event 1 on 2026-01-08, got %+v", got)
	}

	seen := map[int64]int{}
	for _, c := range cells {
		for _, e := range b.On(c.Date) {
			seen[e.ID]++
			if e.Date != c.Date {
				t.Errorf("Event %d bound to %s but dated %s", e.ID, c.Date, e.Date)
			}
		}
	}
	for id := int64(1); id <= 4; id++ {
		if seen[id] != 1 {
			t.Errorf("Event %d bound %d times, want 1", id, seen[id])
		}
	}
	if seen[5] != 0 {
		t.Errorf("February event should not be bound in January grid")
	}

	if evs := b.On(mustDate(t, "2026-01-09")); len(evs) != 0 {
		t.Errorf("Expected no events on 2026-01-09, got %d", len(evs))
	}
}

func TestBindEventsTrailingDays(t *testing.T) {
	events := []Event{{ID: 9, Title: "x", Date: mustDate(t, "2025-12-29")}}
	cells := BuildMonthGrid(mustDate(t, "2026-01-15"), time.Sunday, Date{})
	b := BindEvents(cells, events)

	if len(b.On(mustDate(t, "2025-12-29"))) != 1 {
		t.Error("Event on a leading day should bind to its cell")
	}
	if agenda := Agenda(cells, b); len(agenda) != 0 {
		t.Errorf("Agenda should only list in-month events, got %+v", agenda)
	}
}

func TestBindEventsPreservesInputOrder(t *testing.T) {
	d := mustDate(t, "2026-01-20")
	events := []Event{
		{ID: 30, Title: "c", Date: d},
		{ID: 10, Title: "a", Date: d},
		{ID: 20, Title: "b", Date: d},
	}
	cells := BuildMonthGrid(d, time.Sunday, Date{})
	b := BindEvents(cells, events)

	var ids []int64
	for _, e := range b.On(d) {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []int64{30, 10, 20}) {
		t.Errorf("Expected input order preserved, got %v", ids)
	}
}

func TestBindEventsSkipsInvalidDates(t *testing.T) {
	events := []Event{
		{ID: 1, Title: "missing"},
		{ID: 2, Title: "bad", Date: Date{Year: 2026, Month: 2, Day: 30}},
		{ID: 3, Title: "ok", Date: mustDate(t, "2026-02-03")},
	}
	cells := BuildMonthGrid(mustDate(t, "2026-02-01"), time.Sunday, Date{})
	b := BindEvents(cells, events)

	total := 0
	for _, evs := range b {
		total += len(evs)
	}
	if total != 1 {
		t.Errorf("Expected only the valid event bound, got %d", total)
	}
}

func TestBindEventsIdempotent(t *testing.T) {
	cells := BuildMonthGrid(mustDate(t, "2026-01-01"), time.Sunday, Date{})
	events := sampleEvents(t)

	first := BindEvents(cells, events)
	second := BindEvents(cells, events)
	if !reflect.DeepEqual(first, second) {
		t.Error("BindEvents should return identical bindings for identical input")
	}
}

func TestAgendaChronological(t *testing.T) {
	events := []Event{
		{ID: 4, Title: "late", Date: mustDate(t, "2026-01-24")},
		{ID: 1, Title: "early", Date: mustDate(t, "2026-01-08")},
		{ID: 2, Title: "same day first", Date: mustDate(t, "2026-01-12")},
		{ID: 3, Title: "same day second", Date: mustDate(t, "2026-01-12")},
		{ID: 5, Title: "next month", Date: mustDate(t, "2026-02-11")},
	}
	v := NewMonthView(Month{Year: 2026, Month: time.January}, events, Date{}, time.Sunday)

	var ids []int64
	for _, e := range v.Agenda {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []int64{1, 2, 3, 4}) {
		t.Errorf("Unexpected agenda order %v", ids)
	}
}

func TestFebruaryEventNotInJanuary(t *testing.T) {
	v := NewMonthView(Month{Year: 2026, Month: time.January}, sampleEvents(t), Date{}, time.Sunday)
	for _, c := range v.Cells {
		for _, e := range v.Bindings.On(c.Date) {
			if e.ID == 5 {
				t.Fatalf("Event dated 2026-02-11 appeared on %s", c.Date)
			}
		}
	}
}
