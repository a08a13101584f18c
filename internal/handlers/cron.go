package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RunAutomationHandle runs one automation pass. Failures inside a subsystem
// are reported as warnings, so the response is always 200 once authorized.
func (h *Handler) RunAutomationHandle(c *gin.Context) {
	result := h.automation.Run(c.Request.Context(), h.clock())
	c.JSON(http.StatusOK, result)
}
