package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"medicore/middleware"
	"medicore/services/doctor"
	"medicore/utils"

	"github.com/gin-gonic/gin"
)

// saveProfileImage stages an optional multipart "profileImage" upload in a
// temp file and returns its path, or "" when no file was sent. The caller
// gets a cleanup func to defer.
func saveProfileImage(c *gin.Context) (string, func(), error) {
	fileHeader, err := c.FormFile("profileImage")
	if err != nil {
		return "", func() {}, nil
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		return "", func() {}, err
	}
	return tempFilePath, func() { os.Remove(tempFilePath) }, nil
}

// RegisterDoctorHandler creates a doctor account. Accepts multipart form data
// so a profile image can be attached.
func (h *HandlerBundle) RegisterDoctorHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	fee, _ := strconv.ParseFloat(c.PostForm("fee"), 64)
	input := doctor.RegisterDoctorInput{
		Name:          c.PostForm("name"),
		Email:         c.PostForm("email"),
		Password:      c.PostForm("password"),
		Phone:         c.PostForm("phone"),
		Specialty:     c.PostForm("specialty"),
		Qualification: c.PostForm("qualification"),
		AvailableDays: c.PostFormArray("availableDays"),
		AvailableTime: c.PostFormArray("availableTime"),
		Fee:           fee,
	}

	imagePath, cleanup, err := saveProfileImage(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save uploaded file", err.Error())
		return
	}
	defer cleanup()
	input.ProfileImagePath = imagePath

	doc, err := h.Doctors.Register(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Doctor registered successfully",
		"doctor":  doc,
	})
}

// DoctorLoginHandler authenticates a doctor and returns a session token.
func (h *HandlerBundle) DoctorLoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Doctors.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DoctorLogoutHandler revokes the authenticated doctor's session token.
func (h *HandlerBundle) DoctorLogoutHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	if err := h.Doctors.RevokeToken(actor.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetDoctorsHandler lists all doctors.
func (h *HandlerBundle) GetDoctorsHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	docs, err := h.Doctors.GetAll(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": docs})
}

// GetDoctorHandler returns a single doctor.
func (h *HandlerBundle) GetDoctorHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	doc, err := h.Doctors.GetByID(actor, c.Param("doctorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateDoctorHandler applies a partial update to a doctor record.
func (h *HandlerBundle) UpdateDoctorHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	fee, _ := strconv.ParseFloat(c.PostForm("fee"), 64)
	input := doctor.UpdateDoctorInput{
		Name:          c.PostForm("name"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
		Specialty:     c.PostForm("specialty"),
		Qualification: c.PostForm("qualification"),
		AvailableDays: c.PostFormArray("availableDays"),
		AvailableTime: c.PostFormArray("availableTime"),
		Fee:           fee,
	}
	if len(input.AvailableDays) == 0 {
		input.AvailableDays = nil
	}
	if len(input.AvailableTime) == 0 {
		input.AvailableTime = nil
	}

	imagePath, cleanup, err := saveProfileImage(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save uploaded file", err.Error())
		return
	}
	defer cleanup()
	input.ProfileImagePath = imagePath

	doc, err := h.Doctors.Update(c.Request.Context(), actor, c.Param("doctorId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Doctor updated",
		"doctor":  doc,
	})
}

// DoctorFeesHandler lists every doctor's consultation fee.
func (h *HandlerBundle) DoctorFeesHandler(c *gin.Context) {
	fees, err := h.Doctors.Fees()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fees": fees})
}

// SetDoctorFeeHandler updates a doctor's consultation fee.
func (h *HandlerBundle) SetDoctorFeeHandler(c *gin.Context) {
	var input struct {
		Fee float64 `json:"fee"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	doc, err := h.Doctors.SetFee(c.Param("doctorId"), input.Fee)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Fee updated",
		"doctor":  doc,
	})
}
