package appointment

import (
	"context"
	"testing"

	"medicore/models"
	"medicore/services/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2030-06-03 is a Monday, comfortably in the future.
const monday = "2030-06-03"

var receptionist = models.Actor{ID: "staff-1", Role: models.RoleReception}

func newBookingFixture(t *testing.T) (*DefaultAppointmentService, *models.Doctor, *models.Patient) {
	t.Helper()

	doc := &models.Doctor{
		ID:            uuid.New().String(),
		Name:          "Dr. Asha Menon",
		Email:         "asha@clinic.test",
		Specialty:     "Cardiology",
		AvailableDays: []string{"Monday", "Wednesday"},
		AvailableTime: []string{"9:00 AM - 10:00 AM"},
		Fee:           700,
	}
	pat := &models.Patient{
		ID:     uuid.New().String(),
		Name:   "Ravi Kumar",
		Age:    42,
		Gender: "Male",
		Phone:  "9876543210",
	}

	doctors := &fakeDoctorRepo{doctors: map[string]*models.Doctor{doc.ID: doc}}
	patients := &fakePatientRepo{patients: map[string]*models.Patient{pat.ID: pat}}
	svc := &DefaultAppointmentService{
		Appointments: &fakeAppointmentRepo{},
		Doctors:      doctors,
		Patients:     patients,
	}
	return svc, doc, pat
}

func TestBookAutoAssignsFirstFreeSlot(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)
	ctx := context.Background()

	first, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
	})
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM", first.Appointment.Time)
	assert.Equal(t, doc.Name, first.DoctorName)

	second, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
	})
	require.NoError(t, err)
	assert.Equal(t, "9:10 AM", second.Appointment.Time)
}

func TestBookSnapshotsPatientNameAndFee(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)

	result, err := svc.Book(context.Background(), receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
	})
	require.NoError(t, err)

	assert.Equal(t, pat.Name, result.Appointment.PatientName)
	assert.Equal(t, doc.Fee, result.Appointment.Fee)
	assert.Equal(t, models.StatusBooked, result.Appointment.Status)
	assert.Equal(t, models.PaymentPending, result.Appointment.PaymentStatus)
}

func TestBookRegistersInlinePatient(t *testing.T) {
	svc, doc, _ := newBookingFixture(t)

	result, err := svc.Book(context.Background(), receptionist, models.BookAppointmentInput{
		Patient: &models.PatientDetails{
			Name:   "Meena Pillai",
			Age:    35,
			Gender: "Female",
			Phone:  "9123456780",
		},
		DoctorID: doc.ID,
		Date:     monday,
		Time:     "9:30 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "Meena Pillai", result.Appointment.PatientName)
	assert.Equal(t, "9:30 AM", result.Appointment.Time)

	created, err := svc.Patients.GetByID(result.Appointment.PatientID)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Meena Pillai", created.Name)
}

func TestBookPatientInputValidation(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		DoctorID: doc.ID,
		Date:     monday,
	})
	var missing *MissingPatientError
	assert.ErrorAs(t, err, &missing)

	_, err = svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		Patient:   &models.PatientDetails{Name: "X", Age: 1, Gender: "Male", Phone: "1"},
		DoctorID:  doc.ID,
		Date:      monday,
	})
	var ambiguous *AmbiguousPatientError
	assert.ErrorAs(t, err, &ambiguous)

	_, err = svc.Book(ctx, receptionist, models.BookAppointmentInput{
		Patient:  &models.PatientDetails{Name: "No Phone", Age: 20, Gender: "Male"},
		DoctorID: doc.ID,
		Date:     monday,
	})
	var incomplete *IncompletePatientDetailsError
	assert.ErrorAs(t, err, &incomplete)

	_, err = svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: uuid.New().String(),
		DoctorID:  doc.ID,
		Date:      monday,
	})
	var notFound *PatientNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestBookDateValidation(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
	})
	var missingDate *MissingDateError
	assert.ErrorAs(t, err, &missingDate)

	_, err = svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      "03-06-2030",
	})
	var invalidDate *InvalidDateError
	assert.ErrorAs(t, err, &invalidDate)

	_, err = svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      "2020-06-01",
	})
	var pastDate *PastDateError
	assert.ErrorAs(t, err, &pastDate)
}

func TestBookDoctorValidation(t *testing.T) {
	svc, _, pat := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  "not-a-uuid",
		Date:      monday,
	})
	var invalidID *InvalidDoctorIDError
	assert.ErrorAs(t, err, &invalidID)

	_, err = svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  uuid.New().String(),
		Date:      monday,
	})
	var notFound *DoctorNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestBookRejectsTakenSlot(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
		Time:      "9:20 AM",
	})
	require.NoError(t, err)

	_, err = svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
		Time:      "9:20 AM",
	})
	var taken *scheduling.SlotTakenError
	assert.ErrorAs(t, err, &taken)
}

func TestBookCancelledAppointmentStillBlocksSlot(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)
	ctx := context.Background()

	first, err := svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
		Time:      "9:40 AM",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, first.Appointment.ID, models.StatusCancelled)
	require.NoError(t, err)

	_, err = svc.Book(ctx, receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      monday,
		Time:      "9:40 AM",
	})
	var taken *scheduling.SlotTakenError
	assert.ErrorAs(t, err, &taken)
}

func TestBookDoctorNotAvailableOnWeekday(t *testing.T) {
	svc, doc, pat := newBookingFixture(t)

	// 2030-06-04 is a Tuesday.
	_, err := svc.Book(context.Background(), receptionist, models.BookAppointmentInput{
		PatientID: pat.ID,
		DoctorID:  doc.ID,
		Date:      "2030-06-04",
	})
	var unavailable *scheduling.DoctorUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Tuesday", unavailable.Weekday)
	assert.Equal(t, doc.AvailableDays, unavailable.AvailableDays)
}
