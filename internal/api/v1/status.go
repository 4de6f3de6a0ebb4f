package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharadgeorge/oncall-converter/internal/department"
)

// Version reported by the status endpoint.
const Version = "1.0.0"

// StatusResponse system status.
type StatusResponse struct {
	Version       string `json:"version"`
	Departments   int    `json:"departments"`
	DirectorySize int    `json:"directorySize"`
}

// GetStatus reports version and reference-data counts.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Version:       Version,
		Departments:   len(department.Names()),
		DirectorySize: h.coordinator.Directory().Len(),
	})
}
