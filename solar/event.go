package solar

import (
	"math"
)

// DawnType selects how far below the horizon the sun must be for
// a twilight event.
type DawnType uint8

const (
	// Civil twilight: the sun is 6 degrees below the horizon. There
	// is enough light for most objects to be distinguishable.
	Civil DawnType = iota
	// Nautical twilight: the sun is 12 degrees below the horizon.
	// Sailors can make out the horizon at sea.
	Nautical
	// Astronomical twilight: the sun is 18 degrees below the
	// horizon. Often indistinguishable from night.
	Astronomical
)

var dawnDepths = [...]float64{
	Civil:        6 * Degree,
	Nautical:     12 * Degree,
	Astronomical: 18 * Degree,
}

var dawnNames = [...]string{
	Civil:        "civil",
	Nautical:     "nautical",
	Astronomical: "astronomical",
}

func (d DawnType) String() string {
	if int(d) < len(dawnNames) {
		return dawnNames[d]
	}
	return "unknown"
}

// depth is the angle below the horizon, in radians. Unknown types
// have no depth and so never occur.
func (d DawnType) depth() float64 {
	if int(d) < len(dawnDepths) {
		return dawnDepths[d]
	}
	return math.NaN()
}

type eventKind uint8

const (
	kindUnknown eventKind = iota
	kindSunrise
	kindSunset
	kindDawn
	kindDusk
	kindElevation
)

// sunriseDepth accounts for the solar radius and mean refraction at
// the horizon
const sunriseDepth = 5 * Degree / 6

// Event is a moment in the solar day identified by the angle of the
// sun relative to the horizon and whether it happens before or
// after solar noon.
//
// Events are plain values and may be compared with ==. The zero
// Event is not valid and never occurs.
type Event struct {
	kind    eventKind
	dawn    DawnType
	angle   float64
	morning bool
}

var (
	// Sunrise is the moment when the upper rim of the sun appears
	// on the horizon in the morning.
	Sunrise = Event{kind: kindSunrise, morning: true}
	// Sunset is the moment the upper rim of the sun disappears below
	// the horizon in the evening.
	Sunset = Event{kind: kindSunset}
)

// Dawn marks the beginning of morning twilight.
func Dawn(t DawnType) Event {
	return Event{kind: kindDawn, dawn: t, morning: true}
}

// Dusk marks the end of evening twilight.
func Dusk(t DawnType) Event {
	return Event{kind: kindDusk, dawn: t}
}

// Elevation is the moment the sun passes angle, in radians, either
// before (morning) or after solar noon.
//
// The angle follows the same convention as twilight depths:
// positive values are below the horizon, so Elevation(-0.1, true)
// occurs shortly after sunrise.
func Elevation(angle float64, morning bool) Event {
	return Event{kind: kindElevation, angle: angle, morning: morning}
}

// Angle returns the target angle of the event in radians, positive
// below the horizon.
func (e Event) Angle() float64 {
	switch e.kind {
	case kindSunrise, kindSunset:
		return sunriseDepth
	case kindDawn, kindDusk:
		return e.dawn.depth()
	case kindElevation:
		return e.angle
	default:
		return math.NaN()
	}
}

// Valid reports whether e is one of the known events. The zero
// Event is not valid.
func (e Event) Valid() bool {
	return e.kind != kindUnknown
}

// Morning reports whether the event happens before solar noon.
func (e Event) Morning() bool {
	return e.morning
}
