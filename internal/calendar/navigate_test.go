package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestNavigate(t *testing.T) {
	jan := Month{Year: 2026, Month: time.January}
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		cursor Month
		action Action
		want   string
	}{
		{"next", jan, Next, "2026-02"},
		{"previous across year", jan, Previous, "2025-12"},
		{"next across year", Month{Year: 2025, Month: time.December}, Next, "2026-01"},
		{"today", jan, Today, "2026-10"},
		{"stay", jan, Stay, "2026-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Navigate(tt.cursor, tt.action, now).String(); got != tt.want {
				t.Errorf("Navigate(%s, %s) = %s, want %s", tt.cursor, tt.action, got, tt.want)
			}
		})
	}
}

func TestNavigateTodayUsesClockLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2026-01-31 16:00 UTC is already February 1st in Tokyo.
	now := time.Date(2026, time.January, 31, 16, 0, 0, 0, time.UTC).In(tokyo)

	if got := Navigate(Month{Year: 2020, Month: time.May}, Today, now).String(); got != "2026-02" {
		t.Errorf("Expected 2026-02, got %s", got)
	}
}

func TestParseAction(t *testing.T) {
	for in, want := range map[string]Action{
		"":         Stay,
		"next":     Next,
		"prev":     Previous,
		"Previous": Previous,
		"today":    Today,
	} {
		got, err := ParseAction(in)
		if err != nil {
			t.Errorf("ParseAction(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAction(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseAction("sideways"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
}

func TestAddMonths(t *testing.T) {
	m := Month{Year: 2026, Month: time.March}
	if got := m.AddMonths(-15).String(); got != "2024-12" {
		t.Errorf("Expected 2024-12, got %s", got)
	}
	if got := m.AddMonths(22).String(); got != "2028-01" {
		t.Errorf("Expected 2028-01, got %s", got)
	}
}
