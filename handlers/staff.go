package handlers

import (
	"net/http"

	"medicore/middleware"
	"medicore/services/staff"
	"medicore/utils"

	"github.com/gin-gonic/gin"
)

// RegisterStaffHandler creates an admin or reception account.
func (h *HandlerBundle) RegisterStaffHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input staff.RegisterStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	member, err := h.Staff.Register(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Staff registered successfully",
		"staff":   member,
	})
}

// StaffLoginHandler authenticates a staff member and returns a session token.
func (h *HandlerBundle) StaffLoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Staff.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StaffLogoutHandler revokes the authenticated staff member's session token.
func (h *HandlerBundle) StaffLogoutHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	if err := h.Staff.RevokeToken(actor.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// SetStaffDutyHandler toggles a staff member's on-duty flag.
func (h *HandlerBundle) SetStaffDutyHandler(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input struct {
		OnDuty bool `json:"onDuty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Staff.SetOnDuty(actor, c.Param("staffId"), input.OnDuty); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Duty status updated"})
}
