package main

import (
	"log/slog"
	"strings"
	"testing"
)

func TestRunRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{"TIMEZONE": "Mars/Olympus_Mons"}, "invalid TIMEZONE"},
		{map[string]string{"LOCALE": "fr"}, "invalid LOCALE"},
		{map[string]string{"WEEK_START": "wednesday"}, "invalid WEEK_START"},
		{map[string]string{"INITIAL_MONTH": "2026-13"}, "invalid INITIAL_MONTH"},
		{map[string]string{"EVENTS_FILE": "testdata/missing.yaml"}, "failed to load events"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "error")
			t.Setenv("MONGODB_URI", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := run()
			if err == nil {
				t.Fatal("Expected run to return an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
