package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
const monday = "2025-06-02"

func mondayAvailability(windows ...string) Availability {
	return Availability{Days: []string{"Monday"}, Windows: windows}
}

func TestAllocateAutoAssignFirstFree(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:30 AM")

	got, err := Allocate(av, monday, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", got)

	got, err = Allocate(av, monday, BookedSet([]string{"9:00 AM", "9:10 AM"}), "")
	require.NoError(t, err)
	assert.Equal(t, "9:20 AM", got)
}

func TestAllocateSlotsExhausted(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:30 AM")
	booked := BookedSet([]string{"9:00 AM", "9:10 AM", "9:20 AM"})

	_, err := Allocate(av, monday, booked, "")
	var exhausted *SlotsExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, monday, exhausted.Date)
}

func TestAllocateAutoAssignIsDeterministic(t *testing.T) {
	av := mondayAvailability("9:00 AM - 1:00 PM")
	booked := BookedSet([]string{"9:00 AM", "9:20 AM"})

	first, err := Allocate(av, monday, booked, "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Allocate(av, monday, booked, "")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "9:10 AM", first)
}

// Windows are tried in declared order, never sorted by time: a later-starting
// window declared first hands out its slots before an earlier one.
func TestAllocateWalksWindowsInDeclaredOrder(t *testing.T) {
	av := mondayAvailability("4:00 PM - 4:30 PM", "9:00 AM - 9:30 AM")

	got, err := Allocate(av, monday, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "4:00 PM", got)

	booked := BookedSet([]string{"4:00 PM", "4:10 PM", "4:20 PM"})
	got, err = Allocate(av, monday, booked, "")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", got)
}

func TestAllocateRequestedTimeValid(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:30 AM")

	got, err := Allocate(av, monday, nil, "9:20 AM")
	require.NoError(t, err)
	assert.Equal(t, "9:20 AM", got)
}

// A requested time is only checked for window membership, not snapped to the
// ten-minute grid.
func TestAllocateRequestedTimeOffGrid(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:30 AM")

	got, err := Allocate(av, monday, nil, "9:05 AM")
	require.NoError(t, err)
	assert.Equal(t, "9:05 AM", got)
}

func TestAllocateRequestedTimeOverrunsWindow(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:30 AM")

	// 9:25 + 10 minutes spills past 9:30.
	_, err := Allocate(av, monday, nil, "9:25 AM")
	var invalid *InvalidSlotError
	require.ErrorAs(t, err, &invalid)
}

func TestAllocateRequestedTimeTaken(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:30 AM")
	booked := BookedSet([]string{"9:10 AM"})

	_, err := Allocate(av, monday, booked, "9:10 AM")
	var taken *SlotTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, "9:10 AM", taken.Time)

	// Rejection is repeatable: the same request keeps failing the same way.
	_, err = Allocate(av, monday, booked, "9:10 AM")
	require.ErrorAs(t, err, &taken)
}

func TestAllocateRequestedTimeMalformed(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:30 AM")

	_, err := Allocate(av, monday, nil, "9h30")
	var malformed *MalformedTimeError
	require.ErrorAs(t, err, &malformed)
}

func TestAllocateDoctorUnavailableOnWeekday(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:30 AM")

	// 2025-06-03 is a Tuesday.
	_, err := Allocate(av, "2025-06-03", nil, "")
	var unavailable *DoctorUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Tuesday", unavailable.Weekday)
	assert.Equal(t, []string{"Monday"}, unavailable.AvailableDays)
}

func TestAllocateNoWindowsConfigured(t *testing.T) {
	av := Availability{Days: []string{"Monday"}}

	_, err := Allocate(av, monday, nil, "")
	var none *NoAvailabilityConfiguredError
	require.ErrorAs(t, err, &none)
}

// Overlapping windows are walked independently; the second window can offer
// candidates the first already covered.
func TestAllocateOverlappingWindows(t *testing.T) {
	av := mondayAvailability("9:00 AM - 9:20 AM", "9:10 AM - 9:40 AM")

	booked := BookedSet([]string{"9:00 AM"})
	got, err := Allocate(av, monday, booked, "")
	require.NoError(t, err)
	assert.Equal(t, "9:10 AM", got)

	booked = BookedSet([]string{"9:00 AM", "9:10 AM", "9:20 AM"})
	got, err = Allocate(av, monday, booked, "")
	require.NoError(t, err)
	assert.Equal(t, "9:30 AM", got)
}

func TestAllocateSkipsUnparseableWindow(t *testing.T) {
	av := mondayAvailability("bogus window", "9:00 AM - 9:30 AM")

	got, err := Allocate(av, monday, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", got)
}
