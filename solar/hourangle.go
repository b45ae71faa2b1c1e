package solar

import (
	"math"
)

// dip returns the depression of the visible horizon for an observer
// at altitude meters, in radians. Negative altitudes raise the
// horizon.
func dip(altitude float64) float64 {
	sign := 0.0
	switch {
	case altitude > 0:
		sign = 1
	case altitude < 0:
		sign = -1
	}
	return 2.076 * Degree * sign * math.Sqrt(math.Abs(altitude)) / 60
}

// HourAngle returns the signed angle, in radians, between solar
// transit and the moment event occurs. Latitude and declination are
// in radians and altitude is in meters. Morning events have a
// negative hour angle.
//
// The result is NaN when the sun never reaches the event's angle
// on that day, as happens during polar day and polar night.
func HourAngle(latitude, declination, altitude float64, event Event) float64 {
	numerator := -math.Sin(event.Angle()+dip(altitude)) - math.Sin(latitude)*math.Sin(declination)
	denominator := math.Cos(latitude) * math.Cos(declination)

	sign := 1.0
	if event.Morning() {
		sign = -1
	}

	return sign * math.Acos(numerator/denominator)
}
