package handlers

import (
	"net/http"

	"medicore/middleware"
	"medicore/services/patient"
	"medicore/utils"

	"github.com/gin-gonic/gin"
)

// RegisterPatientHandler creates a patient record.
func (h *HandlerBundle) RegisterPatientHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input patient.RegisterPatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Patients.Register(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Patient registered successfully"
	if result.DuplicatePhone {
		message = "Patient registered successfully. Note: this phone number is already in use."
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"patient": result.Patient,
	})
}

// GetPatientsHandler lists all patients.
func (h *HandlerBundle) GetPatientsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	patients, err := h.Patients.GetAll(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// GetPatientsByPhoneHandler finds patients registered under a phone number.
func (h *HandlerBundle) GetPatientsByPhoneHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	patients, err := h.Patients.GetByPhone(actor, c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// MyPatientsHandler lists the distinct patients the authenticated doctor has
// seen.
func (h *HandlerBundle) MyPatientsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	patients, err := h.Patients.OfDoctor(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}
