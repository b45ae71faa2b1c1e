// Package solar calculates the times of sunrise, sunset, twilight and
// arbitrary solar elevations for a place and a calendar date.
//
// The calculations follow the simplified solar position equations
// described at https://en.wikipedia.org/wiki/Sunrise_equation and
// are accurate to within a minute or so at mid latitudes.
//
//	coords, _ := solar.NewCoordinates(40.7, -74.0)
//	day := solar.NewDay(coords, time.Now())
//	if rise, ok := day.EventTime(solar.Sunrise); ok {
//		fmt.Println(rise.Local())
//	}
//
// Latitude and longitude are given in degrees. Every other angle,
// including Elevation targets, Event.Angle, HourAngle and
// Day.Declination, is in radians. Events that do not occur on a
// given day (the sun never setting during polar day, for example)
// are reported as absent rather than as errors.
package solar
