package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Locale turns dates into display labels for one language.
type Locale interface {
	Name() string
	MonthTitle(m Month) string
	WeekdayShort(w time.Weekday) string
	AgendaDate(d Date) string
	TodayLabel() string
	AgendaHeading() string
}

// LocaleByName returns the locale for "ja" or "en".
func LocaleByName(name string) (Locale, error) {
	switch strings.ToLower(name) {
	case "ja", "":
		return Japanese{}, nil
	case "en":
		return English{}, nil
	}
	return nil, fmt.Errorf("unsupported locale %q", name)
}

type Japanese struct{}

var jaWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

func (Japanese) Name() string { return "ja" }

func (Japanese) MonthTitle(m Month) string {
	return fmt.Sprintf("%d年 %d月", m.Year, int(m.Month))
}

func (Japanese) WeekdayShort(w time.Weekday) string { return jaWeekdays[w] }

func (Japanese) AgendaDate(d Date) string {
	return fmt.Sprintf("%d月%d日 (%s)", int(d.Month), d.Day, jaWeekdays[d.Weekday()])
}

func (Japanese) TodayLabel() string    { return "今日" }
func (Japanese) AgendaHeading() string { return "今月の予定" }

type English struct{}

func (English) Name() string { return "en" }

func (English) MonthTitle(m Month) string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

func (English) WeekdayShort(w time.Weekday) string { return w.String()[:3] }

func (English) AgendaDate(d Date) string {
	return fmt.Sprintf("%s %d (%s)", d.Month.String()[:3], d.Day, d.Weekday().String()[:3])
}

func (English) TodayLabel() string    { return "Today" }
func (English) AgendaHeading() string { return "This month" }
