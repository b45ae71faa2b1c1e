package solar_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/sunrise/solar"
)

func newDay(t *testing.T, lat, lon float64, year int, month time.Month, day int) solar.Day {
	t.Helper()
	coords, ok := solar.NewCoordinates(lat, lon)
	require.True(t, ok)
	return solar.NewDay(coords, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func parseTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func assertEventTime(t *testing.T, day solar.Day, event solar.Event, want string) {
	t.Helper()
	got, ok := day.EventTime(event)
	require.True(t, ok, "%s should occur", event)
	assert.Equal(t, parseTime(t, want), got, event.String())
}

func TestEventTimeSunrise(t *testing.T) {
	day := newDay(t, 0, 0, 1970, time.January, 1)

	rise, ok := day.EventUnix(solar.Sunrise)
	require.True(t, ok)
	assert.Equal(t, int64(21594), rise)

	set, ok := day.EventUnix(solar.Sunset)
	require.True(t, ok)
	assert.Equal(t, int64(65228), set)

	assertEventTime(t, day, solar.Sunrise, "1970-01-01T05:59:54Z")
	assertEventTime(t, day, solar.Sunset, "1970-01-01T18:07:08Z")
}

func TestEventTimeAltitude(t *testing.T) {
	day := newDay(t, 0, 0, 1970, time.January, 1)

	assertEventTime(t, day.WithAltitude(123), solar.Sunrise, "1970-01-01T05:58:14Z")
	assertEventTime(t, day.WithAltitude(-10), solar.Sunrise, "1970-01-01T06:00:22Z")

	// WithAltitude does not modify the receiver
	assert.Equal(t, 0.0, day.Altitude())
	assertEventTime(t, day, solar.Sunrise, "1970-01-01T05:59:54Z")
}

func TestEventTimeAltitudeMonotonic(t *testing.T) {
	day := newDay(t, 0, 0, 1970, time.January, 1)

	var rises, sets []int64
	for _, altitude := range []float64{-10, 0, 123} {
		rise, ok := day.WithAltitude(altitude).EventUnix(solar.Sunrise)
		require.True(t, ok)
		set, ok := day.WithAltitude(altitude).EventUnix(solar.Sunset)
		require.True(t, ok)
		rises = append(rises, rise)
		sets = append(sets, set)
	}

	assert.Greater(t, rises[0], rises[1])
	assert.Greater(t, rises[1], rises[2])
	assert.Less(t, sets[0], sets[1])
	assert.Less(t, sets[1], sets[2])
}

func TestEventTimeTwilight(t *testing.T) {
	day := newDay(t, 0, 0, 2023, time.January, 1)

	tests := []struct {
		event solar.Event
		want  string
	}{
		{solar.Dawn(solar.Civil), "2023-01-01T05:37:08Z"},
		{solar.Dusk(solar.Civil), "2023-01-01T18:29:18Z"},
		{solar.Dawn(solar.Nautical), "2023-01-01T05:11:00Z"},
		{solar.Dusk(solar.Nautical), "2023-01-01T18:55:27Z"},
		{solar.Dawn(solar.Astronomical), "2023-01-01T04:44:45Z"},
		{solar.Dusk(solar.Astronomical), "2023-01-01T19:21:42Z"},
	}
	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			assertEventTime(t, day, tt.event, tt.want)
		})
	}
}

func TestEventTimeElevation(t *testing.T) {
	day := newDay(t, 0, 0, 2023, time.January, 1)

	assertEventTime(t, day, solar.Elevation(math.Pi/4, true), "2023-01-01T02:42:24Z")
	assertEventTime(t, day, solar.Elevation(math.Pi/4, false), "2023-01-01T21:24:02Z")
}

func TestEventTimeOrder(t *testing.T) {
	day := newDay(t, 2, 10, 2024, time.February, 23).WithAltitude(100)

	events := []solar.Event{
		solar.Dawn(solar.Astronomical),
		solar.Dawn(solar.Nautical),
		solar.Dawn(solar.Civil),
		solar.Sunrise,
		solar.Elevation(-0.1, true),
		solar.Elevation(-0.1, false),
		solar.Sunset,
		solar.Dusk(solar.Civil),
		solar.Dusk(solar.Nautical),
		solar.Dusk(solar.Astronomical),
	}

	var prev time.Time
	for _, event := range events {
		ts, ok := day.EventTime(event)
		require.True(t, ok, event.String())
		assert.False(t, ts.Before(prev), "%s at %s is before %s", event, ts, prev)
		prev = ts
	}
}

func TestEventTimePolar(t *testing.T) {
	arcticPolarDay := newDay(t, 85, 0, 1970, time.August, 1)
	antarcticPolarNight := newDay(t, -85, 0, 1970, time.August, 1)

	for _, day := range []solar.Day{arcticPolarDay, antarcticPolarNight} {
		for _, event := range []solar.Event{solar.Sunrise, solar.Sunset} {
			ts, ok := day.EventTime(event)
			assert.False(t, ok, "%s at latitude %v", event, day.Latitude())
			assert.True(t, ts.IsZero())

			_, ok = day.EventUnix(event)
			assert.False(t, ok)
		}
	}

	// twilight deepens enough for nautical dawn to disappear at 60N in June
	june := newDay(t, 60, 0, 2024, time.June, 21)
	_, ok := june.EventTime(solar.Dawn(solar.Nautical))
	assert.False(t, ok)
	assertEventTime(t, june, solar.Dawn(solar.Civil), time.Unix(1718930945, 0).UTC().Format(time.RFC3339))
}

func TestTransitShiftsWithLongitude(t *testing.T) {
	greenwich := newDay(t, 0, 0, 1970, time.January, 1)
	east := newDay(t, 0, 90, 1970, time.January, 1)

	shift := greenwich.Transit().Sub(east.Transit())
	// a quarter day, give or take the small change in the sun's position
	assert.InDelta(t, float64(6*time.Hour), float64(shift), float64(15*time.Second))
}

func TestTransit(t *testing.T) {
	day := newDay(t, 0, 0, 1970, time.January, 1)
	assert.Equal(t, parseTime(t, "1970-01-01T12:03:31Z"), day.Transit())
	assert.InDelta(t, -22.97753*solar.Degree, day.Declination(), epsilon)
	assert.Equal(t, 0.0, day.Latitude())

	rise, _ := day.EventTime(solar.Sunrise)
	set, _ := day.EventTime(solar.Sunset)
	assert.True(t, rise.Before(day.Transit()))
	assert.True(t, set.After(day.Transit()))
}

func TestDayIsComparable(t *testing.T) {
	a := newDay(t, 51.5, -0.12, 2024, time.March, 20)
	b := newDay(t, 51.5, -0.12, 2024, time.March, 20)
	assert.True(t, a == b)
	assert.False(t, a == a.WithAltitude(10))
}

func TestZeroEventNeverOccurs(t *testing.T) {
	day := newDay(t, 0, 0, 1970, time.January, 1)

	var zero solar.Event
	_, ok := day.EventUnix(zero)
	assert.False(t, ok)
	_, ok = day.EventTime(zero)
	assert.False(t, ok)
}
