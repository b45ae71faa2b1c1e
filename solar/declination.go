package solar

import (
	"math"
)

// sin(23.44°), the obliquity of the ecliptic
const sinAxialTilt = 0.39779

// Declination is the angle between the sun and the celestial
// equator for a given ecliptic longitude.
func Declination(eclipticLongitude float64) float64 {
	return math.Asin(math.Sin(eclipticLongitude) * sinAxialTilt)
}

// SolarTransit corrects a mean solar noon for orbital eccentricity
// and axial tilt, yielding the Julian day of true solar noon.
func SolarTransit(day, meanAnomaly, eclipticLongitude float64) float64 {
	return day + 0.0053*math.Sin(meanAnomaly) - 0.0069*math.Sin(2*eclipticLongitude)
}
