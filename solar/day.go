package solar

import (
	"math"
	"time"
)

// Day holds the position of the sun for one calendar date at one
// place. Creating a Day runs the solar position calculations once;
// event queries against it only solve for the hour angle, so a Day
// should be reused for all events on the same date.
//
// Day is an immutable value and is safe to share between goroutines.
type Day struct {
	lat          float64 // degrees
	altitude     float64 // meters
	solarTransit float64 // julian day
	declination  float64 // radians
}

// NewDay computes the solar day for the calendar date of date at
// the given coordinates. The observer is at sea level.
func NewDay(coords Coordinates, date time.Time) Day {
	day := MeanSolarNoon(coords.Lon(), date)
	meanAnomaly := SolarMeanAnomaly(day)
	center := EquationOfTheCenter(meanAnomaly)
	eclipticLongitude := EclipticLongitude(meanAnomaly, center, day)

	return Day{
		lat:          coords.Lat(),
		solarTransit: SolarTransit(day, meanAnomaly, eclipticLongitude),
		declination:  Declination(eclipticLongitude),
	}
}

// WithAltitude returns a copy of d for an observer altitude meters
// above sea level.
func (d Day) WithAltitude(altitude float64) Day {
	d.altitude = altitude
	return d
}

func (d Day) Latitude() float64 {
	return d.lat
}

func (d Day) Altitude() float64 {
	return d.altitude
}

// Declination of the sun on this day, in radians.
func (d Day) Declination() float64 {
	return d.declination
}

// Transit returns the time of solar noon in UTC.
func (d Day) Transit() time.Time {
	return time.Unix(JulianToUnix(d.solarTransit), 0).UTC()
}

// EventUnix returns the unix timestamp of event on this day. The
// second return value is false if the event does not occur.
func (d Day) EventUnix(event Event) (int64, bool) {
	hourAngle := HourAngle(d.lat*Degree, d.declination, d.altitude, event)
	if math.IsNaN(hourAngle) {
		return 0, false
	}

	frac := hourAngle / (2 * math.Pi)
	return JulianToUnix(d.solarTransit + frac), true
}

// EventTime returns the time of event on this day in UTC. The
// second return value is false if the event does not occur, such as
// sunrise during polar night.
func (d Day) EventTime(event Event) (time.Time, bool) {
	ts, ok := d.EventUnix(event)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(ts, 0).UTC(), true
}
