package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"schoolcal/views/models"

	"github.com/a-h/templ"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestEventChipEscapesTitle(t *testing.T) {
	out := render(t, EventChip(models.EventView{ID: 7, Title: `<b>"運動会"</b>`, Tone: "primary", Category: "event"}))

	if strings.Contains(out, "<b>") {
		t.Errorf("Title should be escaped, got %s", out)
	}
	if !strings.Contains(out, `hx-get="/fragments/events/7"`) {
		t.Errorf("Chip should load event detail, got %s", out)
	}
	if !strings.Contains(out, "tone-primary") {
		t.Errorf("Chip should carry its tone, got %s", out)
	}
}

func TestCellClasses(t *testing.T) {
	out := render(t, Cell(models.CellView{Date: "2025-12-28", Day: 28, InMonth: false}))
	if !strings.Contains(out, `class="cell outside"`) {
		t.Errorf("Outside cell class missing, got %s", out)
	}

	out = render(t, Cell(models.CellView{Date: "2026-01-20", Day: 20, InMonth: true, IsToday: true}))
	if !strings.Contains(out, `class="cell today"`) {
		t.Errorf("Today cell class missing, got %s", out)
	}
}

func TestCalendarNavigation(t *testing.T) {
	out := render(t, Calendar(models.MonthView{Month: "2026-01", Title: "2026年 1月", TodayLabel: "今日"}))

	for _, action := range []string{"prev", "today", "next"} {
		if !strings.Contains(out, "month=2026-01&amp;action="+action) {
			t.Errorf("Missing %s navigation in %s", action, out)
		}
	}
}

func TestEventDetailRendersNotesHTML(t *testing.T) {
	out := render(t, EventDetail(models.EventView{
		ID:       3,
		Title:    "<i>実力テスト</i>",
		Category: "exam",
		Tone:     "danger",
		Notes:    "<p>範囲: <strong>数学</strong></p>",
	}))

	if !strings.Contains(out, "<strong>数学</strong>") {
		t.Errorf("Notes should be rendered as HTML, got %s", out)
	}
	if strings.Contains(out, "<i>") {
		t.Errorf("Title should be escaped, got %s", out)
	}
	if !strings.Contains(out, `class="event-detail tone-danger"`) {
		t.Errorf("Detail should carry its tone, got %s", out)
	}
}

func TestWeekdayHeaderClasses(t *testing.T) {
	out := render(t, Calendar(models.MonthView{
		Month: "2026-01",
		Weekdays: []models.WeekdayView{
			{Label: "日", Class: "sun"},
			{Label: "月"},
			{Label: "土", Class: "sat"},
		},
	}))

	for _, want := range []string{`class="weekday sun">日<`, `class="weekday">月<`, `class="weekday sat">土<`} {
		if !strings.Contains(out, want) {
			t.Errorf("Missing %s in %s", want, out)
		}
	}
}
