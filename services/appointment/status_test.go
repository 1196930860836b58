package appointment

import (
	"context"
	"testing"

	"medicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusAcceptsEveryTransition(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)
	ctx := context.Background()

	result, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
	})
	require.NoError(t, err)
	id := result.Appointment.ID

	// No transition is forbidden, including leaving Completed or Cancelled.
	sequence := []string{
		models.StatusScheduled,
		models.StatusCompleted,
		models.StatusCancelled,
		models.StatusPending,
		models.StatusBooked,
	}
	for _, status := range sequence {
		updated, err := svc.UpdateStatus(ctx, id, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	_, err := svc.UpdateStatus(context.Background(), "any-id", "Rescheduled")
	var invalid *InvalidStatusError
	assert.ErrorAs(t, err, &invalid)
}

func TestUpdateStatusMissingAppointment(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	_, err := svc.UpdateStatus(context.Background(), "missing-id", models.StatusCompleted)
	var notFound *AppointmentNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetByIDResolvesDoctorAndPatient(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)
	ctx := context.Background()

	result, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
	})
	require.NoError(t, err)

	detail, err := svc.GetByID(ctx, result.Appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Doctor)
	require.NotNil(t, detail.Patient)
	assert.Equal(t, doc.Name, detail.Doctor.Name)
	assert.Equal(t, pat.Name, detail.Patient.Name)
}

func TestMyAppointmentsRequiresDoctorRole(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	_, err := svc.MyAppointments(context.Background(), receptionist)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestMyAppointmentsDefaultsEmptyStatus(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)
	ctx := context.Background()

	repo := svc.Appointments.(*fakeAppointmentRepo)
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:          "legacy-1",
		PatientID:   pat.ID,
		PatientName: pat.Name,
		DoctorID:    doc.ID,
		Date:        monday,
		Time:        "9:00 AM",
	})

	summaries, err := svc.MyAppointments(ctx, models.Actor{ID: doc.ID, Role: models.RoleDoctor})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, models.StatusBooked, summaries[0].Status)
}

func TestByDoctorRejectsMalformedID(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	_, err := svc.ByDoctor(context.Background(), "not-a-uuid")
	var invalid *InvalidDoctorIDError
	assert.ErrorAs(t, err, &invalid)
}
