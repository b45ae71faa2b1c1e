package solar

import (
	"math"
)

// Degree is one degree of arc in radians.
const Degree = math.Pi / 180

// SolarMeanAnomaly calculates the fraction of the sun's
// orbital period elapsed since perihelion, expressed as an
// angle in [0, 2π).
func SolarMeanAnomaly(day float64) float64 {
	v := math.Mod((357.5291+0.98560028*(day-J2000))*Degree, 2*math.Pi)
	if v < 0 {
		return v + 2*math.Pi
	}
	return v
}

// EquationOfTheCenter calculates the angular difference
// between the position of the actual sun (with an elliptical
// orbit) and the mean sun (with a circular orbit). This
// can be expressed as a function of mean anomaly and
// orbital eccentricity.
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfTheCenter(meanAnomaly float64) float64 {
	firstOrder := 1.9148 * math.Sin(meanAnomaly)
	secondOrder := 0.02 * math.Sin(2*meanAnomaly)
	thirdOrder := 0.0003 * math.Sin(3*meanAnomaly)

	return (firstOrder + secondOrder + thirdOrder) * Degree
}

// ArgumentOfPerihelion is the slowly drifting angle between the
// ascending node and the perihelion of earth's orbit.
func ArgumentOfPerihelion(day float64) float64 {
	return (102.93005 + 0.3179526*(day-J2000)/36525) * Degree
}

// EclipticLongitude calculates the sun's distance along the
// ecliptic, in [0, 2π).
func EclipticLongitude(meanAnomaly, center, day float64) float64 {
	return math.Mod(meanAnomaly+center+ArgumentOfPerihelion(day)+3*math.Pi, 2*math.Pi)
}
