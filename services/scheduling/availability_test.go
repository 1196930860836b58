package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("9:00 AM - 1:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 540, w.Start)
	assert.Equal(t, 780, w.End)

	_, err = ParseWindow("9:00 AM")
	var malformed *MalformedTimeError
	assert.ErrorAs(t, err, &malformed)
}

func TestWithinAvailability(t *testing.T) {
	windows := []string{"9:00 AM - 1:00 PM"}

	// Every grid start from 9:00 through 12:50 fits a 10-minute slot.
	for start := 540; start <= 770; start += 5 {
		assert.True(t, WithinAvailability(windows, start, 10), FormatClockTime(start))
	}
	// 12:55 would overrun 1:00 PM, and 1:00 PM itself is past the window.
	assert.False(t, WithinAvailability(windows, 775, 10))
	assert.False(t, WithinAvailability(windows, 780, 10))
	assert.False(t, WithinAvailability(windows, 539, 10))
}

func TestWithinAvailabilityMultipleWindows(t *testing.T) {
	windows := []string{"9:00 AM - 10:00 AM", "4:00 PM - 6:00 PM"}

	assert.True(t, WithinAvailability(windows, 540, 10))
	assert.True(t, WithinAvailability(windows, 960, 10))
	assert.False(t, WithinAvailability(windows, 720, 10)) // noon gap
}

func TestWithinAvailabilitySkipsMalformedWindows(t *testing.T) {
	windows := []string{"garbage", "9:00 AM - 10:00 AM"}
	assert.True(t, WithinAvailability(windows, 540, 10))
	assert.False(t, WithinAvailability([]string{"garbage"}, 540, 10))
}

func TestDayAvailable(t *testing.T) {
	days := []string{"Monday", "Wednesday"}
	assert.True(t, DayAvailable(days, "Monday"))
	assert.False(t, DayAvailable(days, "Tuesday"))
	assert.False(t, DayAvailable(days, "monday")) // exact match only
	assert.False(t, DayAvailable(nil, "Monday"))
}
