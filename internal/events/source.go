package events

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"schoolcal/internal/calendar"

	yaml "go.yaml.in/yaml/v3"
)

// Source supplies the full event collection once at startup.
type Source interface {
	Load(ctx context.Context) ([]calendar.Event, error)
}

// MockSource serves the built-in school events.
type MockSource struct{}

var mockDocs = []eventDoc{
	{ID: 1, Title: "始業式", Date: "2026-01-08", Type: "event"},
	{ID: 2, Title: "成人の日", Date: "2026-01-12", Type: "holiday"},
	{ID: 3, Title: "実力テスト", Date: "2026-01-20", Type: "exam", Notes: "範囲: **数学・英語・国語**\n\n- 筆記用具\n- 受験票"},
	{ID: 4, Title: "英語検定", Date: "2026-01-24", Type: "exam"},
	{ID: 5, Title: "建国記念の日", Date: "2026-02-11", Type: "holiday"},
}

func (MockSource) Load(ctx context.Context) ([]calendar.Event, error) {
	return docsToEvents(mockDocs, nil)
}

// FileSource reads events from a YAML file of the form
//
//	events:
//	  - id: 1
//	    title: 始業式
//	    date: 2026-01-08
//	    type: event
type FileSource struct {
	Path string
	Log  *slog.Logger
}

type eventFile struct {
	Events []eventDoc `yaml:"events"`
}

func (s FileSource) Load(ctx context.Context) ([]calendar.Event, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	}

	var f eventFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse events file %s: %w", s.Path, err)
	}
	return docsToEvents(f.Events, s.Log)
}

// docsToEvents converts stored documents. An unknown type is an error; a
// missing or malformed date leaves the event with a zero date so it never
// binds to a cell.
func docsToEvents(docs []eventDoc, log *slog.Logger) ([]calendar.Event, error) {
	out := make([]calendar.Event, 0, len(docs))
	for _, d := range docs {
		cat, err := calendar.ParseCategory(strings.TrimSpace(d.Type))
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", d.ID, err)
		}

		date, err := calendar.ParseDate(strings.TrimSpace(d.Date))
		if err != nil && log != nil {
			log.Warn("event has no usable date, it will not be shown", "id", d.ID, "date", d.Date)
		}

		out = append(out, calendar.Event{
			ID:       d.ID,
			Title:    d.Title,
			Date:     date,
			Category: cat,
			Notes:    d.Notes,
		})
	}
	return out, nil
}
