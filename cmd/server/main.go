package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"schoolcal/internal/calendar"
	"schoolcal/internal/db"
	"schoolcal/internal/events"
	mcpserver "schoolcal/internal/mcp"

	"github.com/mark3labs/mcp-go/server"
)

//go:embed static
var staticFS embed.FS

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup, such as closing the
// MongoDB client, always happens.
func run() error {
	// Config
	port := getEnv("PORT", "7521")
	eventsFile := getEnv("EVENTS_FILE", "")
	mongoURI := getEnv("MONGODB_URI", "")
	mongoDB := getEnv("MONGODB_DB", "schoolcal")
	tzName := getEnv("TIMEZONE", "Asia/Tokyo")
	localeName := getEnv("LOCALE", "ja")
	weekStartName := getEnv("WEEK_START", "sunday")
	initialMonth := os.Getenv("INITIAL_MONTH")
	if _, set := os.LookupEnv("INITIAL_MONTH"); !set {
		initialMonth = "2026-01"
	}

	// Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(getEnv("LOG_LEVEL", "info")),
	}))

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", tzName, err)
	}
	locale, err := calendar.LocaleByName(localeName)
	if err != nil {
		return fmt.Errorf("invalid LOCALE: %w", err)
	}
	weekStart, ok := calendar.ParseWeekStart(strings.ToLower(weekStartName))
	if !ok {
		return fmt.Errorf("invalid WEEK_START %q, expected sunday or monday", weekStartName)
	}
	var initial *calendar.Month
	if initialMonth != "" {
		m, err := calendar.ParseMonth(initialMonth)
		if err != nil {
			return fmt.Errorf("invalid INITIAL_MONTH: %w", err)
		}
		initial = &m
	}

	// Context for startup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Pick the event source
	var src events.Source = events.MockSource{}
	switch {
	case mongoURI != "":
		logger.Info("connecting to MongoDB", "db", mongoDB)
		database, disconnect, err := db.Connect(ctx, mongoURI, mongoDB)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		defer disconnect(context.Background())

		repo := events.NewRepo(database, logger)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warn("failed to ensure indexes", "error", err)
		}
		if n, err := repo.Count(ctx, ""); err != nil {
			logger.Warn("failed to count events", "error", err)
		} else {
			logger.Info("connected to MongoDB", "events", n)
		}
		src = repo
	case eventsFile != "":
		logger.Info("loading events file", "path", eventsFile)
		src = events.FileSource{Path: eventsFile, Log: logger}
	default:
		logger.Info("using built-in mock events")
	}

	// Wire dependencies
	eventSvc, err := events.NewService(ctx, src, events.Options{
		Locale:    locale,
		WeekStart: weekStart,
		Location:  loc,
		Initial:   initial,
	})
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}
	logger.Info("events loaded", "count", eventSvc.Count(), "initial_month", eventSvc.InitialMonth().String())
	eventHandler := events.NewHandler(eventSvc, logger)

	// Create MCP server
	mcpSrv := mcpserver.NewServer(eventSvc)

	// HTTP router
	mux := http.NewServeMux()

	// Static files
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to get static fs: %w", err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	// REST API endpoints
	mux.HandleFunc("GET /api/month", eventHandler.GetMonth)
	mux.HandleFunc("GET /api/agenda", eventHandler.GetAgenda)
	mux.HandleFunc("GET /api/navigate", eventHandler.Navigate)
	mux.HandleFunc("GET /api/events/{id}", eventHandler.GetEvent)
	mux.HandleFunc("GET /api/categories", eventHandler.ListCategories)
	mux.HandleFunc("GET /api/calendar.ics", eventHandler.ExportICS)

	// HTMX Web UI
	mux.HandleFunc("GET /", eventHandler.HomePage)
	mux.HandleFunc("GET /fragments/calendar", eventHandler.CalendarFragment)
	mux.HandleFunc("GET /fragments/events/{id}", eventHandler.EventFragment)

	// MCP endpoint (HTTP transport)
	mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
	mux.Handle("POST /mcp", mcpHTTP)
	mux.Handle("GET /mcp", mcpHTTP)
	mux.Handle("DELETE /mcp", mcpHTTP)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Start server
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("server starting", "port", port, "locale", locale.Name(), "week_start", weekStart.String(), "timezone", loc.String())
	logger.Info("endpoints available",
		"web", "http://localhost:"+port,
		"api", "http://localhost:"+port+"/api",
		"mcp", "http://localhost:"+port+"/mcp",
	)

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
