package solar

import (
	"fmt"
	"time"
)

// SunriseSunset returns the unix timestamps of sunrise and sunset
// at the given latitude and longitude on a calendar date.
//
// It panics if the coordinates are invalid or if the sun does not
// rise or set that day.
//
// Deprecated: use NewDay and Day.EventTime, which report absent
// events instead of panicking.
func SunriseSunset(lat, lon float64, year int, month time.Month, day int) (int64, int64) {
	coords, ok := NewCoordinates(lat, lon)
	if !ok {
		panic(fmt.Sprintf("invalid coordinates: (%v, %v)", lat, lon))
	}

	solarDay := NewDay(coords, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	rise, ok := solarDay.EventUnix(Sunrise)
	if !ok {
		panic(fmt.Sprintf("no sunrise at %s on %04d-%02d-%02d", coords, year, month, day))
	}
	set, ok := solarDay.EventUnix(Sunset)
	if !ok {
		panic(fmt.Sprintf("no sunset at %s on %04d-%02d-%02d", coords, year, month, day))
	}

	return rise, set
}
