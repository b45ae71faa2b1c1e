package solar

import (
	"fmt"
	"math"
)

// Coordinates is a valid pair of latitude and longitude, in degrees.
type Coordinates struct {
	lat float64
	lon float64
}

// NewCoordinates validates a latitude and longitude. It returns
// false if either is NaN, the latitude is outside [-90, 90] or the
// longitude is outside [-180, 180].
func NewCoordinates(lat, lon float64) (Coordinates, bool) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinates{}, false
	}
	return Coordinates{lat: lat, lon: lon}, true
}

func (c Coordinates) Lat() float64 {
	return c.lat
}

func (c Coordinates) Lon() float64 {
	return c.lon
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%v, %v)", c.lat, c.lon)
}
