package sunrise

import (
	"log/slog"
	"time"

	"github.com/subtlepseudonym/sunrise/solar"
)

// searchDays bounds how far ahead Next looks for an event that
// does not occur every day, such as sunset near the poles
const searchDays = 370

// EventSchedule fires at a solar event, shifted by Offset, at a
// given location
//
// This implements robfig/cron.Schedule
type EventSchedule struct {
	Location Location      `json:"location"`
	Event    solar.Event   `json:"event"`
	Offset   time.Duration `json:"offset"`

	Logger  *slog.Logger `json:"-"`
	Metrics *Metrics     `json:"-"`
}

// Next returns the first occurrence of the schedule's event, plus
// its offset, strictly after now. Days on which the event does not
// happen are skipped. If the event does not happen within the
// search window, the zero time is returned and cron will not run
// the job again.
func (s EventSchedule) Next(now time.Time) time.Time {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !s.Event.Valid() {
		logger.Error("schedule solar event", "error", "no event set")
		return time.Time{}
	}

	coords, err := s.Location.Coordinates()
	if err != nil {
		logger.Error("schedule solar event", "event", s.Event.String(), "error", err)
		return time.Time{}
	}

	// events on a UTC date fall within a day and a half of its start,
	// so beginning the day before the threshold cannot miss one
	threshold := now.Add(-s.Offset)
	start := threshold.UTC().AddDate(0, 0, -1)

	for i := 0; i < searchDays; i++ {
		date := start.AddDate(0, 0, i)
		day := solar.NewDay(coords, date).WithAltitude(s.Location.Altitude)

		eventTime, ok := day.EventTime(s.Event)
		if !ok {
			logger.Debug("solar event does not occur", "event", s.Event.String(), "date", date.Format(time.DateOnly))
			// the day before the threshold was already searched by
			// the previous call
			if i > 0 {
				s.Metrics.eventMissing(s.Event)
			}
			continue
		}
		if !eventTime.After(threshold) {
			continue
		}

		next := eventTime.Add(s.Offset).In(now.Location())
		logger.Info("next solar event", "event", s.Event.String(), "offset", s.Offset, "at", next.Format(time.RFC3339))
		return next
	}

	logger.Warn("solar event not found", "event", s.Event.String(), "days", searchDays, "after", now.Format(time.RFC3339))
	return time.Time{}
}
