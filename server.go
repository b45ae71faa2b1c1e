package sunrise

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/subtlepseudonym/sunrise/solar"
)

// DailyEvents are the solar events reported for a day, in the order
// they occur
var DailyEvents = []solar.Event{
	solar.Dawn(solar.Astronomical),
	solar.Dawn(solar.Nautical),
	solar.Dawn(solar.Civil),
	solar.Sunrise,
	solar.Sunset,
	solar.Dusk(solar.Civil),
	solar.Dusk(solar.Nautical),
	solar.Dusk(solar.Astronomical),
}

// EventTime is the time of a solar event; Time is nil when the event
// does not occur
type EventTime struct {
	Event solar.Event `json:"event"`
	Time  *time.Time  `json:"time"`
}

// DayReport describes the solar events of one day at one location
type DayReport struct {
	Date        string      `json:"date"`
	Location    Location    `json:"location"`
	SolarNoon   time.Time   `json:"solar_noon"`
	Declination float64     `json:"declination"` // degrees
	Events      []EventTime `json:"events"`
}

// Report computes the times of events at location on the calendar
// date of date
func Report(location Location, date time.Time, events []solar.Event) (DayReport, error) {
	day, err := location.Day(date)
	if err != nil {
		return DayReport{}, err
	}

	report := DayReport{
		Date:        date.Format(time.DateOnly),
		Location:    location,
		SolarNoon:   day.Transit(),
		Declination: day.Declination() / solar.Degree,
		Events:      make([]EventTime, 0, len(events)),
	}
	for _, event := range events {
		et := EventTime{Event: event}
		if ts, ok := day.EventTime(event); ok {
			et.Time = &ts
		}
		report.Events = append(report.Events, et)
	}
	return report, nil
}

// JobEntry is a scheduled job as reported by the jobs endpoint
type JobEntry struct {
	ID   int       `json:"id"`
	Name string    `json:"name,omitempty"`
	Next time.Time `json:"next"`
	Prev time.Time `json:"prev"`
}

// Server exposes health, metrics, solar event and job HTTP endpoints
type Server struct {
	httpServer *http.Server
	location   Location
	scheduler  *cron.Cron
	clock      clockwork.Clock
	logger     *slog.Logger
	metrics    *Metrics
}

// NewServer creates an HTTP server with /healthz, /metrics, /events
// and /jobs routes. Metrics are served from gatherer; scheduler may
// be nil if no jobs are configured.
func NewServer(addr string, location Location, scheduler *cron.Cron, clock clockwork.Clock, gatherer prometheus.Gatherer, metrics *Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		location:  location,
		scheduler: scheduler,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /jobs", s.handleJobs)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	s.metrics.eventQueried()
	query := r.URL.Query()

	date := s.clock.Now().UTC()
	if v := query.Get("date"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("parse date: %w", err))
			return
		}
		date = d
	}

	location := s.location
	if v := query.Get("altitude"); v != "" {
		altitude, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(altitude) || math.IsInf(altitude, 0) {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid altitude %q", v))
			return
		}
		location.Altitude = altitude
	}

	events := DailyEvents
	if values := query["event"]; len(values) > 0 {
		events = make([]solar.Event, 0, len(values))
		for _, v := range values {
			event, err := solar.ParseEvent(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			events = append(events, event)
		}
	}

	report, err := Report(location, date, events)
	if err != nil {
		s.logger.Error("solar report", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleJobs(w http.ResponseWriter, _ *http.Request) {
	jobs := []JobEntry{}
	if s.scheduler != nil {
		for _, entry := range s.scheduler.Entries() {
			je := JobEntry{
				ID:   int(entry.ID),
				Next: entry.Next,
				Prev: entry.Prev,
			}
			if job, ok := entry.Job.(Job); ok {
				je.Name = job.Name
			}
			jobs = append(jobs, je)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	writeJSON(w, http.StatusOK, jobs)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
