package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardSummaryHandler returns the front-desk dashboard summary.
func (h *HandlerBundle) DashboardSummaryHandler(c *gin.Context) {
	summary, err := h.Dashboard.GetSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
