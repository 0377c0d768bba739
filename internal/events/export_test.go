package events

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"schoolcal/internal/calendar"

	"github.com/emersion/go-ical"
)

func TestBuildICS(t *testing.T) {
	evs := []calendar.Event{
		{ID: 1, Title: "始業式", Date: calendar.Date{Year: 2026, Month: time.January, Day: 8}, Category: calendar.General},
		{ID: 2, Title: "日付なし", Category: calendar.Exam},
		{ID: 3, Title: "実力テスト", Date: calendar.Date{Year: 2026, Month: time.January, Day: 20}, Category: calendar.Exam, Notes: "範囲"},
	}

	cal := BuildICS("2026年 1月", evs, testNow)
	vevents := cal.Events()
	if len(vevents) != 2 {
		t.Fatalf("Expected 2 VEVENTs, got %d", len(vevents))
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	body := buf.String()

	for _, field := range []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + icsProductID,
		"DTSTART;VALUE=DATE:20260108",
		"DTEND;VALUE=DATE:20260109",
		"SUMMARY:始業式",
		"CATEGORIES:exam",
		"DESCRIPTION:範囲",
		"UID:1-2026-01-08@schoolcal",
		"END:VCALENDAR",
	} {
		if !strings.Contains(body, field) {
			t.Errorf("ICS output missing %s", field)
		}
	}
	if strings.Contains(body, "日付なし") {
		t.Error("Event without a date should not be exported")
	}
}

func TestWriteICSRoundTrip(t *testing.T) {
	svc := newTestService(t, MockSource{})

	var buf bytes.Buffer
	if err := svc.WriteICS(&buf, calendar.Month{Year: 2026, Month: time.February}); err != nil {
		t.Fatalf("WriteICS: %v", err)
	}

	cal, err := ical.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	vevents := cal.Events()
	if len(vevents) != 1 {
		t.Fatalf("Expected 1 event in February, got %d", len(vevents))
	}
	summary, err := vevents[0].Props.Text(ical.PropSummary)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary != "建国記念の日" {
		t.Errorf("Unexpected summary %q", summary)
	}
}

func TestWriteICSEmptyMonth(t *testing.T) {
	svc := newTestService(t, MockSource{})

	var buf bytes.Buffer
	if err := svc.WriteICS(&buf, calendar.Month{Year: 2026, Month: time.March}); err != nil {
		t.Fatalf("WriteICS: %v", err)
	}

	cal, err := ical.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n := len(cal.Events()); n != 0 {
		t.Errorf("Expected no events in March, got %d", n)
	}
	name, err := cal.Props.Text("X-WR-CALNAME")
	if err != nil {
		t.Fatalf("calendar name: %v", err)
	}
	if name != "2026年 3月" {
		t.Errorf("Unexpected calendar name %q", name)
	}
}
