package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharadgeorge/oncall-converter/internal/department"
)

// DepartmentInfo one registered department as seen by the upload UI.
type DepartmentInfo struct {
	Name              string            `json:"name"`
	FileRequirements  []string          `json:"fileRequirements"`
	TeamAbbreviations map[string]string `json:"teamAbbreviations"`
}

// ListDepartments lists the registered departments.
// GET /api/departments
func (h *Handler) ListDepartments(c *gin.Context) {
	var infos []DepartmentInfo
	for _, name := range department.Names() {
		d, err := department.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, DepartmentInfo{
			Name:              d.Name(),
			FileRequirements:  d.FileRequirements(),
			TeamAbbreviations: d.TeamAbbreviations(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"departments": infos})
}
