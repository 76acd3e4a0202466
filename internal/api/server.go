// Package api exposes the schedule-to-calendar pipeline as a single
// API-key gated HTTP route.
package api

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/isu2cal/isu2cal/internal/i18n"
	"github.com/isu2cal/isu2cal/internal/ical"
	"github.com/isu2cal/isu2cal/internal/schedule"
)

// Fetcher returns the raw personal schedule payload for a date range.
// internal/itmo implements it; tests substitute their own.
type Fetcher interface {
	PersonalSchedule(ctx context.Context, start, end time.Time, lang i18n.Language) ([]byte, error)
}

// Server holds the collaborators of one conversion request. Requests share
// no mutable state, so the handler is safe for concurrent use.
type Server struct {
	fetcher Fetcher
	apiKey  string
}

// NewServer wires the fetcher and the shared-secret key.
func NewServer(fetcher Fetcher, apiKey string) *Server {
	return &Server{fetcher: fetcher, apiKey: apiKey}
}

// Calendar handles GET /calendar?key=&date_start=&date_end=&lang=.
// Responses: 200 text/calendar, 401 on key mismatch, 400 on malformed
// parameters, 500 with a short generic message on any pipeline failure.
// Detailed errors go to the log only; they never reach the client.
func (s *Server) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if subtle.ConstantTimeCompare([]byte(q.Get("key")), []byte(s.apiKey)) != 1 {
		http.Error(w, "invalid API key", http.StatusUnauthorized)
		return
	}

	lang := i18n.English
	if v := q.Get("lang"); v != "" {
		var err error
		if lang, err = i18n.ParseLanguage(v); err != nil {
			http.Error(w, "unsupported language", http.StatusBadRequest)
			return
		}
	}

	start, end, err := dateRange(q.Get("date_start"), q.Get("date_end"))
	if err != nil {
		http.Error(w, "invalid date range", http.StatusBadRequest)
		return
	}

	payload, err := s.fetcher.PersonalSchedule(ctx, start, end, lang)
	if err != nil {
		slog.ErrorContext(ctx, "Schedule fetch failed", "error", err)
		http.Error(w, "failed to fetch schedule", http.StatusInternalServerError)
		return
	}

	sched, err := schedule.Parse(payload)
	if err != nil {
		slog.ErrorContext(ctx, "Schedule parse failed", "error", err)
		http.Error(w, "failed to generate calendar", http.StatusInternalServerError)
		return
	}

	text, err := ical.Generate(sched.Lessons(), lang)
	if err != nil {
		slog.ErrorContext(ctx, "Calendar generation failed", "error", err)
		http.Error(w, "failed to generate calendar", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// dateRange parses the date_start/date_end parameters, defaulting to the
// current week when both are absent. Naming only one of the two is a
// caller mistake.
func dateRange(startStr, endStr string) (time.Time, time.Time, error) {
	if startStr == "" && endStr == "" {
		start, end := schedule.WeekRange(time.Now())
		return start, end, nil
	}

	start, err := time.Parse(time.DateOnly, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.DateOnly, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
