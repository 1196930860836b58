package scheduling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"1:00 AM", 60},
		{"9:00 AM", 540},
		{"11:59 AM", 719},
		{"12:00 PM", 720},
		{"12:45 PM", 765},
		{"1:00 PM", 780},
		{"11:59 PM", 1439},
	}
	for _, c := range cases {
		got, err := ParseClockTime(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseClockTimeMalformed(t *testing.T) {
	for _, in := range []string{"", "9:00", "9:00AM", "9 00 AM", "nine:00 AM", "9:xx PM"} {
		_, err := ParseClockTime(in)
		var malformed *MalformedTimeError
		require.ErrorAs(t, err, &malformed, in)
	}
}

func TestFormatClockTime(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatClockTime(0))
	assert.Equal(t, "9:00 AM", FormatClockTime(540))
	assert.Equal(t, "12:00 PM", FormatClockTime(720))
	assert.Equal(t, "1:10 PM", FormatClockTime(790))
	assert.Equal(t, "11:59 PM", FormatClockTime(1439))
}

func TestClockTimeRoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		got, err := ParseClockTime(FormatClockTime(m))
		require.NoError(t, err)
		require.Equal(t, m, got, fmt.Sprintf("minute %d", m))
	}
}

// Minutes past midnight are formatted with no day rollover; the hour keeps
// counting and is reduced modulo 12. Callers must not rely on wraparound.
func TestFormatClockTimeBeyondMidnight(t *testing.T) {
	assert.Equal(t, "12:00 PM", FormatClockTime(1440))
	assert.Equal(t, "1:30 PM", FormatClockTime(1530))
}

func TestWeekdayName(t *testing.T) {
	cases := map[string]string{
		"2025-06-02": "Monday",
		"2025-06-03": "Tuesday",
		"2025-06-08": "Sunday",
		"2024-02-29": "Thursday",
	}
	for date, want := range cases {
		got, err := WeekdayName(date)
		require.NoError(t, err)
		assert.Equal(t, want, got, date)
	}

	_, err := WeekdayName("not-a-date")
	assert.Error(t, err)
}
