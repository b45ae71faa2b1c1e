package solar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDawnType parses "civil", "nautical" or "astronomical".
func ParseDawnType(s string) (DawnType, error) {
	for i, name := range dawnNames {
		if strings.EqualFold(s, name) {
			return DawnType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown twilight type %q", s)
}

// ParseEvent parses the text form of an event, as produced by
// Event.String:
//
//	sunrise
//	sunset
//	dawn [civil|nautical|astronomical]
//	dusk [civil|nautical|astronomical]
//	elevation <radians> morning|evening
//
// Dawn and dusk default to civil twilight. Matching is case
// insensitive.
func ParseEvent(s string) (Event, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("empty event")
	}

	switch name, args := fields[0], fields[1:]; name {
	case "sunrise", "sunset":
		if len(args) != 0 {
			return Event{}, fmt.Errorf("%s takes no arguments: %q", name, s)
		}
		if name == "sunrise" {
			return Sunrise, nil
		}
		return Sunset, nil
	case "dawn", "dusk":
		dawnType := Civil
		switch len(args) {
		case 0:
		case 1:
			var err error
			dawnType, err = ParseDawnType(args[0])
			if err != nil {
				return Event{}, fmt.Errorf("parse %s: %w", name, err)
			}
		default:
			return Event{}, fmt.Errorf("%s takes at most one argument: %q", name, s)
		}
		if name == "dawn" {
			return Dawn(dawnType), nil
		}
		return Dusk(dawnType), nil
	case "elevation":
		if len(args) != 2 {
			return Event{}, fmt.Errorf("elevation requires an angle and morning or evening: %q", s)
		}
		angle, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Event{}, fmt.Errorf("parse elevation angle: %w", err)
		}
		if math.IsNaN(angle) || math.IsInf(angle, 0) {
			return Event{}, fmt.Errorf("elevation angle must be finite, got %q", args[0])
		}
		switch args[1] {
		case "morning":
			return Elevation(angle, true), nil
		case "evening":
			return Elevation(angle, false), nil
		default:
			return Event{}, fmt.Errorf("elevation must be morning or evening, got %q", args[1])
		}
	default:
		return Event{}, fmt.Errorf("unknown event %q", name)
	}
}

var errUnknownEvent = errors.New("unknown event")

// MarshalText implements encoding.TextMarshaler. The zero Event
// cannot be marshaled.
func (e Event) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, errUnknownEvent
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *Event) UnmarshalText(text []byte) error {
	event, err := ParseEvent(string(text))
	if err != nil {
		return err
	}
	*e = event
	return nil
}

func (e Event) String() string {
	switch e.kind {
	case kindSunrise:
		return "sunrise"
	case kindSunset:
		return "sunset"
	case kindDawn:
		return "dawn " + e.dawn.String()
	case kindDusk:
		return "dusk " + e.dawn.String()
	case kindElevation:
		half := "evening"
		if e.morning {
			half = "morning"
		}
		return "elevation " + strconv.FormatFloat(e.angle, 'g', -1, 64) + " " + half
	default:
		return "unknown"
	}
}
