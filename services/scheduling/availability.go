package scheduling

import "strings"

// Window is a parsed availability range in minutes since midnight.
type Window struct {
	Start int
	End   int
}

// ParseWindow parses an availability window of the shape
// "H:MM AM - H:MM PM" into its start and end minutes.
func ParseWindow(s string) (Window, error) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return Window{}, &MalformedTimeError{Value: s}
	}
	start, err := ParseClockTime(parts[0])
	if err != nil {
		return Window{}, err
	}
	end, err := ParseClockTime(parts[1])
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end}, nil
}

// WithinAvailability reports whether a slot starting at start minutes and
// lasting granularity minutes fits entirely inside one of the declared
// windows. A slot whose start is valid but whose end overruns the window is
// rejected; slots never spill past a window boundary. Windows that fail to
// parse never match.
func WithinAvailability(windows []string, start, granularity int) bool {
	for _, raw := range windows {
		w, err := ParseWindow(raw)
		if err != nil {
			continue
		}
		if w.Start <= start && start+granularity <= w.End {
			return true
		}
	}
	return false
}

// DayAvailable reports whether weekday is one of the doctor's configured days.
// The match is exact; day names are stored in full English form.
func DayAvailable(days []string, weekday string) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}
