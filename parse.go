package sunrise

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/subtlepseudonym/sunrise/solar"
)

const eventPrefix = "@"

var solarEventNames = map[string]bool{
	"sunrise":   true,
	"sunset":    true,
	"dawn":      true,
	"dusk":      true,
	"elevation": true,
}

// ScheduleParser builds cron schedules that understand solar events
// at a fixed location, in addition to the standard cron syntax.
type ScheduleParser struct {
	Location Location
	Logger   *slog.Logger
	Metrics  *Metrics
}

// Parse returns a schedule for spec. Solar schedules name an event
// after an @, optionally followed by an offset in time.ParseDuration
// format:
//
//	@sunrise
//	@sunset -1h
//	@dawn nautical
//	@dusk astronomical 15m
//	@elevation -0.1 morning
//
// Anything else, including cron's own descriptors such as @daily,
// is parsed by cron.ParseStandard.
func (p ScheduleParser) Parse(spec string) (cron.Schedule, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], eventPrefix) {
		return cron.ParseStandard(spec)
	}

	fields[0] = strings.TrimPrefix(fields[0], eventPrefix)
	if !solarEventNames[strings.ToLower(fields[0])] {
		return cron.ParseStandard(spec)
	}

	if _, err := p.Location.Coordinates(); err != nil {
		return nil, err
	}

	var offset time.Duration
	if len(fields) > 1 {
		if d, err := time.ParseDuration(fields[len(fields)-1]); err == nil {
			offset = d
			fields = fields[:len(fields)-1]
		}
	}

	event, err := solar.ParseEvent(strings.Join(fields, " "))
	if err != nil {
		return nil, fmt.Errorf("parse solar schedule %q: %w", spec, err)
	}

	return EventSchedule{
		Location: p.Location,
		Event:    event,
		Offset:   offset,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
	}, nil
}
