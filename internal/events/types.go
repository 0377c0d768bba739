package events

import (
	"schoolcal/internal/calendar"
)

// eventDoc is the stored shape of an event in Mongo and in YAML files.
// Date stays a string so one malformed entry does not reject the batch.
type eventDoc struct {
	ID    int64  `bson:"_id" yaml:"id"`
	Title string `bson:"title" yaml:"title"`
	Date  string `bson:"date" yaml:"date"`
	Type  string `bson:"type" yaml:"type"`
	Notes string `bson:"notes,omitempty" yaml:"notes"`
}

// CategoryCount is a category with the number of loaded events in it.
type CategoryCount struct {
	Name  string `json:"name"`
	Tone  string `json:"tone"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CellResult is a grid cell in API responses.
type CellResult struct {
	Date    string           `json:"date"`
	InMonth bool             `json:"inMonth"`
	IsToday bool             `json:"isToday"`
	Events  []calendar.Event `json:"events"`
}

// MonthResult is a month view in API responses.
type MonthResult struct {
	Month     string             `json:"month"`
	Title     string             `json:"title"`
	Prev      string             `json:"prev"`
	Next      string             `json:"next"`
	WeekStart string             `json:"weekStart"`
	Weekdays  []string           `json:"weekdays"`
	Weeks     [][]CellResult     `json:"weeks"`
	Agenda    []AgendaItemResult `json:"agenda"`
}

// AgendaItemResult is one agenda row in API responses.
type AgendaItemResult struct {
	calendar.Event
	Label string `json:"label"`
}
