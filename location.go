package sunrise

import (
	"errors"
	"fmt"
	"time"

	"github.com/subtlepseudonym/sunrise/solar"
)

var ErrInvalidLocation = errors.New("invalid location")

// Location is the position of an observer. Latitude and longitude
// are in degrees and altitude is in meters above sea level.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude,omitempty"`
}

// Coordinates validates the location's latitude and longitude
func (l Location) Coordinates() (solar.Coordinates, error) {
	coords, ok := solar.NewCoordinates(l.Latitude, l.Longitude)
	if !ok {
		return solar.Coordinates{}, fmt.Errorf("%w: latitude %v, longitude %v", ErrInvalidLocation, l.Latitude, l.Longitude)
	}
	return coords, nil
}

// Day returns the solar day at the location for the calendar date
// of date
func (l Location) Day(date time.Time) (solar.Day, error) {
	coords, err := l.Coordinates()
	if err != nil {
		return solar.Day{}, err
	}
	return solar.NewDay(coords, date).WithAltitude(l.Altitude), nil
}
