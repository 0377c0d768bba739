package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"schoolcal/internal/calendar"
	"schoolcal/internal/events"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with tools for reading the school calendar
func NewServer(svc *events.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"School Event Calendar",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Tool: get_month - Month grid with events per day
	s.AddTool(
		mcp.NewTool("get_month",
			mcp.WithDescription("Get the month grid for a displayed month: whole weeks including leading and trailing days, each day with the school events on it."),
			mcp.WithString("month",
				mcp.Description("Month in YYYY-MM format (default: the calendar's initial month)"),
			),
		),
		handleGetMonth(svc),
	)

	// Tool: get_agenda - Chronological list of the month's events
	s.AddTool(
		mcp.NewTool("get_agenda",
			mcp.WithDescription("List the events of one month in date order. Use this for a quick overview of exams, holidays and events."),
			mcp.WithString("month",
				mcp.Description("Month in YYYY-MM format (default: the calendar's initial month)"),
			),
		),
		handleGetAgenda(svc),
	)

	// Tool: navigate_month - Move the month cursor
	s.AddTool(
		mcp.NewTool("navigate_month",
			mcp.WithDescription("Compute the month reached from a displayed month by a navigation action."),
			mcp.WithString("month",
				mcp.Required(),
				mcp.Description("Current month in YYYY-MM format"),
			),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Description("One of: next, prev, today"),
				mcp.Enum("next", "prev", "today"),
			),
		),
		handleNavigate(svc),
	)

	// Tool: get_event - Get a single event by ID
	s.AddTool(
		mcp.NewTool("get_event",
			mcp.WithDescription("Get a specific school event by its numeric ID, including its notes."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("The event ID"),
			),
		),
		handleGetEvent(svc),
	)

	// Tool: list_categories - Categories with counts
	s.AddTool(
		mcp.NewTool("list_categories",
			mcp.WithDescription("List event categories (exam, holiday, event) with the number of events in each."),
		),
		handleListCategories(svc),
	)

	return s
}

func handleGetMonth(svc *events.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cursor, err := svc.ResolveMonth(req.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid 'month': %v", err)), nil
		}

		return jsonResult(svc.MonthResult(svc.Month(cursor)))
	}
}

func handleGetAgenda(svc *events.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cursor, err := svc.ResolveMonth(req.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid 'month': %v", err)), nil
		}

		return jsonResult(svc.AgendaResult(svc.Agenda(cursor)))
	}
}

func handleNavigate(svc *events.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := req.RequireString("month")
		if err != nil {
			return mcp.NewToolResultError("month is required"), nil
		}
		cursor, err := calendar.ParseMonth(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid 'month': %v", err)), nil
		}

		rawAction, err := req.RequireString("action")
		if err != nil {
			return mcp.NewToolResultError("action is required"), nil
		}
		action, err := calendar.ParseAction(rawAction)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return jsonResult(map[string]string{"month": svc.Navigate(cursor, action).String()})
	}
}

func handleGetEvent(svc *events.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireInt("id")
		if err != nil {
			return mcp.NewToolResultError("id is required"), nil
		}

		event, err := svc.Get(int64(id))
		if errors.Is(err, events.ErrEventNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("event %d not found", id)), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get event: %v", err)), nil
		}

		return jsonResult(event)
	}
}

func handleListCategories(svc *events.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(svc.Categories())
	}
}

// Helper functions

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
