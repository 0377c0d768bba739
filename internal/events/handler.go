package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"schoolcal/internal/calendar"
	"schoolcal/views/components"
	"schoolcal/views/models"
	"schoolcal/views/pages"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// --- REST API Handlers ---

// GetMonth handles GET /api/month
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	cursor, ok := h.monthParam(w, r, h.jsonError)
	if !ok {
		return
	}
	h.jsonResponse(w, h.svc.MonthResult(h.svc.Month(cursor)), http.StatusOK)
}

// GetAgenda handles GET /api/agenda
func (h *Handler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	cursor, ok := h.monthParam(w, r, h.jsonError)
	if !ok {
		return
	}
	h.jsonResponse(w, h.svc.AgendaResult(h.svc.Agenda(cursor)), http.StatusOK)
}

// GetEvent handles GET /api/events/{id}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.jsonError(w, "invalid event ID", http.StatusBadRequest)
		return
	}

	event, err := h.svc.Get(id)
	if errors.Is(err, ErrEventNotFound) {
		h.jsonError(w, "event not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get event", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.jsonResponse(w, event, http.StatusOK)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, h.svc.Categories(), http.StatusOK)
}

// Navigate handles GET /api/navigate
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	cursor, ok := h.navigateParams(w, r, h.jsonError)
	if !ok {
		return
	}
	h.jsonResponse(w, map[string]string{"month": cursor.String()}, http.StatusOK)
}

// ExportICS handles GET /api/calendar.ics
func (h *Handler) ExportICS(w http.ResponseWriter, r *http.Request) {
	cursor, ok := h.monthParam(w, r, h.textError)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.svc.WriteICS(&buf, cursor); err != nil {
		h.log.Error("failed to export calendar", "month", cursor.String(), "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=school_calendar_%s.ics", cursor))
	w.Write(buf.Bytes())
}

// --- Helper methods ---

type errorWriter func(w http.ResponseWriter, message string, status int)

func (h *Handler) monthParam(w http.ResponseWriter, r *http.Request, fail errorWriter) (calendar.Month, bool) {
	cursor, err := h.svc.ResolveMonth(r.URL.Query().Get("month"))
	if err != nil {
		fail(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
		return calendar.Month{}, false
	}
	return cursor, true
}

// navigateParams resolves ?month= and then applies ?action=.
func (h *Handler) navigateParams(w http.ResponseWriter, r *http.Request, fail errorWriter) (calendar.Month, bool) {
	cursor, ok := h.monthParam(w, r, fail)
	if !ok {
		return calendar.Month{}, false
	}
	action, err := calendar.ParseAction(r.URL.Query().Get("action"))
	if err != nil {
		fail(w, "invalid action, expected next, prev or today", http.StatusBadRequest)
		return calendar.Month{}, false
	}
	return h.svc.Navigate(cursor, action), true
}

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (h *Handler) textError(w http.ResponseWriter, message string, status int) {
	http.Error(w, message, status)
}

// --- View model converters ---

func (h *Handler) eventToView(e calendar.Event, withNotes bool) models.EventView {
	v := models.EventView{
		ID:       e.ID,
		Title:    e.Title,
		Date:     e.Date.String(),
		DayLabel: h.svc.Locale().AgendaDate(e.Date),
		Category: e.Category.String(),
		Tone:     string(e.Category.Treatment().Tone),
	}
	if withNotes && e.Notes != "" {
		v.Notes = h.svc.RenderMarkdown(e.Notes)
	}
	return v
}

func (h *Handler) monthToView(v calendar.MonthView) models.MonthView {
	loc := h.svc.Locale()
	view := models.MonthView{
		Month:         v.Month.String(),
		Title:         loc.MonthTitle(v.Month),
		Prev:          v.Prev().String(),
		Next:          v.Next().String(),
		TodayLabel:    loc.TodayLabel(),
		AgendaHeading: loc.AgendaHeading(),
	}

	for _, wd := range calendar.WeekdayOrder(v.WeekStart) {
		wv := models.WeekdayView{Label: loc.WeekdayShort(wd)}
		switch wd {
		case time.Sunday:
			wv.Class = "sun"
		case time.Saturday:
			wv.Class = "sat"
		}
		view.Weekdays = append(view.Weekdays, wv)
	}

	for _, week := range v.Weeks() {
		row := make([]models.CellView, len(week))
		for i, c := range week {
			cv := models.CellView{
				Date:    c.Date.String(),
				Day:     c.Date.Day,
				InMonth: c.InMonth,
				IsToday: c.IsToday,
			}
			for _, e := range v.Bindings.On(c.Date) {
				cv.Events = append(cv.Events, h.eventToView(e, false))
			}
			row[i] = cv
		}
		view.Weeks = append(view.Weeks, row)
	}

	for _, e := range v.Agenda {
		view.Agenda = append(view.Agenda, h.eventToView(e, true))
	}
	return view
}

// --- HTMX Web Handlers ---

// HomePage handles GET /
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	cursor, ok := h.monthParam(w, r, h.textError)
	if !ok {
		return
	}

	view := h.monthToView(h.svc.Month(cursor))
	if err := pages.CalendarPage(h.svc.Locale().Name(), view).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render page", "month", cursor.String(), "error", err)
	}
}

// CalendarFragment handles GET /fragments/calendar (HTMX partial)
func (h *Handler) CalendarFragment(w http.ResponseWriter, r *http.Request) {
	cursor, ok := h.navigateParams(w, r, h.textError)
	if !ok {
		return
	}

	h.log.Debug("navigate", "from", r.URL.Query().Get("month"), "action", r.URL.Query().Get("action"), "to", cursor.String())

	view := h.monthToView(h.svc.Month(cursor))
	if err := components.Calendar(view).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render calendar", "month", cursor.String(), "error", err)
	}
}

// EventFragment handles GET /fragments/events/{id} (HTMX partial)
func (h *Handler) EventFragment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid event ID", http.StatusBadRequest)
		return
	}

	event, err := h.svc.Get(id)
	if errors.Is(err, ErrEventNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to get event", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := components.EventDetail(h.eventToView(event, true)).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render event", "id", id, "error", err)
	}
}
