package solar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subtlepseudonym/sunrise/solar"
)

func TestCoordinatesInvalid(t *testing.T) {
	for _, tt := range []struct{ lat, lon float64 }{
		{math.NaN(), 10},
		{10, math.NaN()},
		{-120, 0},
		{90.0001, 0},
		{0, -240},
		{0, 180.5},
		{math.Inf(1), 0},
	} {
		coords, ok := solar.NewCoordinates(tt.lat, tt.lon)
		assert.False(t, ok, "(%v, %v)", tt.lat, tt.lon)
		assert.Equal(t, solar.Coordinates{}, coords)
	}
}

func TestCoordinatesBounds(t *testing.T) {
	for _, tt := range []struct{ lat, lon float64 }{
		{90, 180},
		{-90, -180},
		{0, 0},
	} {
		_, ok := solar.NewCoordinates(tt.lat, tt.lon)
		assert.True(t, ok, "(%v, %v)", tt.lat, tt.lon)
	}
}

func TestCoordinatesExtract(t *testing.T) {
	coords, ok := solar.NewCoordinates(10, 36.35)
	assert.True(t, ok)
	assert.Equal(t, 10.0, coords.Lat())
	assert.Equal(t, 36.35, coords.Lon())
	assert.Equal(t, "(10, 36.35)", coords.String())
}
