package scheduling

// SlotGranularity is the fixed duration in minutes of every bookable slot.
const SlotGranularity = 10

// Availability is a doctor's declared weekly availability: the weekdays they
// consult on and the clock-time windows within those days. Windows are kept
// in declared order and may overlap; the allocator never sorts or merges them.
type Availability struct {
	Days    []string
	Windows []string
}

// BookedSet builds a membership set from the time strings of existing
// appointments for one doctor and date.
func BookedSet(times []string) map[string]bool {
	set := make(map[string]bool, len(times))
	for _, t := range times {
		set[t] = true
	}
	return set
}

// Allocate resolves the slot for a booking on the given date.
//
// When requested is non-empty it is validated as-is: it must fall entirely
// inside some availability window and must not already be booked. The
// requested time is never re-aligned to the slot grid.
//
// When requested is empty the first free slot wins: windows are walked in
// declared order, candidates step from each window's start by SlotGranularity
// and stop before they would overrun the window's end. Given the same
// availability and booked set the result is deterministic.
func Allocate(av Availability, date string, booked map[string]bool, requested string) (string, error) {
	weekday, err := WeekdayName(date)
	if err != nil {
		return "", err
	}
	if !DayAvailable(av.Days, weekday) {
		return "", &DoctorUnavailableError{Weekday: weekday, AvailableDays: av.Days}
	}
	if len(av.Windows) == 0 {
		return "", &NoAvailabilityConfiguredError{}
	}

	if requested != "" {
		mins, err := ParseClockTime(requested)
		if err != nil {
			return "", err
		}
		if !WithinAvailability(av.Windows, mins, SlotGranularity) {
			return "", &InvalidSlotError{Time: requested}
		}
		if booked[requested] {
			return "", &SlotTakenError{Time: requested}
		}
		return requested, nil
	}

	for _, raw := range av.Windows {
		w, err := ParseWindow(raw)
		if err != nil {
			continue
		}
		for start := w.Start; start+SlotGranularity <= w.End; start += SlotGranularity {
			candidate := FormatClockTime(start)
			if !booked[candidate] {
				return candidate, nil
			}
		}
	}
	return "", &SlotsExhaustedError{Date: date}
}
