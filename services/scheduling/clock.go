package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClockTime converts a 12-hour clock string of the exact shape
// "H:MM AM|PM" into minutes since midnight. 12 AM maps to hour 0 and hours
// 1-11 PM gain 12; minute values are trusted as stored, not range-checked.
func ParseClockTime(s string) (int, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return 0, &MalformedTimeError{Value: s}
	}
	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, &MalformedTimeError{Value: s}
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, &MalformedTimeError{Value: s}
	}
	mins, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, &MalformedTimeError{Value: s}
	}
	if parts[1] == "PM" && hours < 12 {
		hours += 12
	}
	if parts[1] == "AM" && hours == 12 {
		hours = 0
	}
	return hours*60 + mins, nil
}

// FormatClockTime is the inverse of ParseClockTime. Values >= 1440 are not
// wrapped: the resulting hour >= 24 is still formatted modulo 12, so callers
// must not feed times that run past midnight and expect a day rollover.
func FormatClockTime(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	h := hours % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, mins, period)
}

// WeekdayName maps a bare "YYYY-MM-DD" date to its full English weekday name.
// The date is interpreted at UTC midnight so the result does not drift with
// the server's local timezone.
func WeekdayName(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.UTC().Weekday().String(), nil
}
