package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListEmployees lists employee directory entries, optionally filtered
// by department.
// GET /api/employees?department=Radiology
func (h *Handler) ListEmployees(c *gin.Context) {
	entries, err := h.store.ListEmployees(c.Query("department"))
	if err != nil {
		h.log.Error("failed to list employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": entries})
}
