package handlers

import (
	"net/http"

	"medicore/middleware"
	"medicore/models"
	"medicore/utils"

	"github.com/gin-gonic/gin"
)

// BookAppointmentHandler books a slot with a doctor, registering the patient
// inline if needed.
func (h *HandlerBundle) BookAppointmentHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input models.BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Appointments.Book(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": result.Appointment,
		"doctorName":  result.DoctorName,
	})
}

// UpdateAppointmentStatusHandler moves an appointment to a new status.
func (h *HandlerBundle) UpdateAppointmentStatusHandler(c *gin.Context) {
	appointmentID := c.Param("appointmentId")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Appointments.UpdateStatus(c.Request.Context(), appointmentID, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Status updated",
		"appointment": appt,
	})
}

// GetAppointmentHandler returns an appointment with its doctor and patient
// resolved.
func (h *HandlerBundle) GetAppointmentHandler(c *gin.Context) {
	detail, err := h.Appointments.GetByID(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// MyAppointmentsHandler lists the authenticated doctor's appointments.
func (h *HandlerBundle) MyAppointmentsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	summaries, err := h.Appointments.MyAppointments(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": summaries})
}

// AppointmentsGroupedByDoctorHandler lists every doctor's appointments for
// the reception view.
func (h *HandlerBundle) AppointmentsGroupedByDoctorHandler(c *gin.Context) {
	grouped, err := h.Appointments.GroupedByDoctor(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": grouped})
}

// AppointmentsByDoctorHandler lists one doctor's appointments.
func (h *HandlerBundle) AppointmentsByDoctorHandler(c *gin.Context) {
	appts, err := h.Appointments.ByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
