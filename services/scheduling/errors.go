package scheduling

import (
	"fmt"
	"strings"
)

// MalformedTimeError reports a clock-time string that does not have the
// "H:MM AM|PM" shape.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed clock time %q", e.Value)
}

// DoctorUnavailableError reports a booking attempt on a weekday the doctor
// does not work. It carries the doctor's configured days for the caller-facing
// message.
type DoctorUnavailableError struct {
	Weekday       string
	AvailableDays []string
}

func (e *DoctorUnavailableError) Error() string {
	return fmt.Sprintf("Doctor not available on %s. Available: %s", e.Weekday, strings.Join(e.AvailableDays, ", "))
}

// NoAvailabilityConfiguredError reports a doctor with no availability windows.
type NoAvailabilityConfiguredError struct{}

func (e *NoAvailabilityConfiguredError) Error() string {
	return "Doctor's available time is not set"
}

// InvalidSlotError reports a requested time outside every availability window.
type InvalidSlotError struct {
	Time string
}

func (e *InvalidSlotError) Error() string {
	return "Time not within doctor's available slots"
}

// SlotTakenError reports a requested time that is already booked.
type SlotTakenError struct {
	Time string
}

func (e *SlotTakenError) Error() string {
	return "Selected time is already booked"
}

// SlotsExhaustedError reports that every candidate slot on the date is booked.
type SlotsExhaustedError struct {
	Date string
}

func (e *SlotsExhaustedError) Error() string {
	return "All slots are full for selected date"
}
