package calendar

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTreatmentCoversAllCategories(t *testing.T) {
	want := map[Category]Tone{
		Exam:    ToneError,
		Holiday: ToneSuccess,
		General: TonePrimary,
	}
	for _, c := range Categories() {
		tone, ok := want[c]
		if !ok {
			t.Fatalf("Category %s has no expected tone in this test", c)
		}
		if got := c.Treatment().Tone; got != tone {
			t.Errorf("%s treatment tone = %s, want %s", c, got, tone)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseCategory("party"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
}

func TestParseDateRejectsOverflow(t *testing.T) {
	if _, err := ParseDate("2026-02-30"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}
	if (Date{}).Valid() {
		t.Error("Zero date should be invalid")
	}
	if (Date{Year: 2026, Month: 2, Day: 29}).Valid() {
		t.Error("2026-02-29 should be invalid")
	}
}

func TestEventJSON(t *testing.T) {
	e := Event{ID: 1, Title: "始業式", Date: Date{Year: 2026, Month: time.January, Day: 8}, Category: General}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, part := range []string{`"date":"2026-01-08"`, `"type":"event"`} {
		if !strings.Contains(string(b), part) {
			t.Errorf("Expected %s in %s", part, b)
		}
	}
}

func TestJapaneseLocale(t *testing.T) {
	ja := Japanese{}
	if got := ja.MonthTitle(Month{Year: 2026, Month: time.January}); got != "2026年 1月" {
		t.Errorf("MonthTitle = %q", got)
	}
	if got := ja.AgendaDate(Date{Year: 2026, Month: time.January, Day: 8}); got != "1月8日 (木)" {
		t.Errorf("AgendaDate = %q", got)
	}
}
