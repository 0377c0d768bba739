package calendar

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown category")

// Category classifies a school event.
type Category int

const (
	General Category = iota
	Exam
	Holiday
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{General, Exam, Holiday}
}

// ParseCategory maps a wire name (exam, holiday, event) to its Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, nil
		}
	}
	return General, fmt.Errorf("%w %q", ErrUnknownCategory, s)
}

func (c Category) String() string {
	switch c {
	case General:
		return "event"
	case Exam:
		return "exam"
	case Holiday:
		return "holiday"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Tone is the visual emphasis a category is drawn with.
type Tone string

const (
	ToneError   Tone = "error"
	ToneSuccess Tone = "success"
	TonePrimary Tone = "primary"
)

// Treatment describes how a category is drawn on the rendering surface.
type Treatment struct {
	Tone  Tone
	Label string
}

// Treatment must handle every Category; TestTreatmentCoversAllCategories
// fails when a new category is added without one.
func (c Category) Treatment() Treatment {
	switch c {
	case Exam:
		return Treatment{Tone: ToneError, Label: "Exam"}
	case Holiday:
		return Treatment{Tone: ToneSuccess, Label: "Holiday"}
	case General:
		return Treatment{Tone: TonePrimary, Label: "Event"}
	}
	panic(fmt.Sprintf("calendar: no treatment for %v", c))
}

// Event is a single school calendar entry. Events are loaded once at
// startup and never mutated.
type Event struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Date     Date     `json:"date"`
	Category Category `json:"type"`
	Notes    string   `json:"notes,omitempty"` // markdown
}

// Cell is one square of the month grid.
type Cell struct {
	Date         Date
	InMonth      bool
	IsToday      bool
	WeekdayIndex int // column, 0 = week start
}
