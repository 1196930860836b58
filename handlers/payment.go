package handlers

import (
	"net/http"

	"medicore/services/payment"
	"medicore/utils"

	"github.com/gin-gonic/gin"
)

// GetPaymentContextHandler returns the checkout context for an appointment.
func (h *HandlerBundle) GetPaymentContextHandler(c *gin.Context) {
	pc, err := h.Payments.GetPaymentContext(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pc)
}

// CreatePaymentOrderHandler opens a gateway order for the appointment's
// consultation fee.
func (h *HandlerBundle) CreatePaymentOrderHandler(c *gin.Context) {
	var input struct {
		AppointmentID string `json:"appointmentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.AppointmentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Appointment ID is required", "")
		return
	}

	order, err := h.Payments.CreateOrder(c.Request.Context(), input.AppointmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// VerifyPaymentHandler validates the gateway callback and settles the
// appointment.
func (h *HandlerBundle) VerifyPaymentHandler(c *gin.Context) {
	var input payment.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Payments.VerifyPayment(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Payment verified successfully",
		"appointment": appt,
	})
}
