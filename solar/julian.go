package solar

import (
	"time"
)

const (
	EpochJulianDate = 2440587.5 // julian day of the unix epoch
	J2000           = 2451545.0 // julian day of 2000-01-01T12:00:00Z
	SecondsPerDay   = 86400     // not including leap seconds
)

// UnixToJulian converts seconds since the unix epoch into a
// Julian day
func UnixToJulian(timestamp int64) float64 {
	return float64(timestamp)/SecondsPerDay + EpochJulianDate
}

// JulianToUnix converts a Julian day into seconds since the unix
// epoch. Fractional seconds are truncated.
func JulianToUnix(day float64) int64 {
	return int64((day - EpochJulianDate) * SecondsPerDay)
}

// JulianDate returns the Julian day for a particular time
//
// Leap seconds are ignored, matching the behavior of the time
// package, which does not represent them at all.
func JulianDate(t time.Time) float64 {
	return UnixToJulian(t.Unix())
}

// MeanSolarNoon approximates solar noon for the mean sun on the
// calendar date of date at the given longitude, in degrees east.
//
// The calendar date is read in date's own location; the noon
// instant is always taken in UTC.
func MeanSolarNoon(longitude float64, date time.Time) float64 {
	year, month, day := date.Date()
	noon := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return JulianDate(noon) - longitude/360
}
