package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sharadgeorge/oncall-converter/internal/converter"
	"github.com/sharadgeorge/oncall-converter/internal/exporter"
	"github.com/sharadgeorge/oncall-converter/internal/model"
)

// sampleLimit number of records echoed back in the convert response.
// The full set is only available through the download links.
const sampleLimit = 20

// ConvertResponse successful conversion summary.
type ConvertResponse struct {
	Department    string                 `json:"department"`
	Month         int                    `json:"month"`
	Year          int                    `json:"year"`
	RecordCount   int                    `json:"recordCount"`
	ExpectedCount int                    `json:"expectedCount"`
	Warnings      model.WarningsReport   `json:"warnings"`
	Sample        []model.ScheduleRecord `json:"sample"`
	Downloads     DownloadLinks          `json:"downloads"`
}

// DownloadLinks one-time download URLs for the generated files.
type DownloadLinks struct {
	CSV  string `json:"csv"`
	XLSX string `json:"xlsx"`
}

// Convert runs one conversion from uploaded workbooks.
// POST /api/convert
func (h *Handler) Convert(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	uploads := form.File["files"]
	if len(uploads) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	dept := c.PostForm("department")
	if dept == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department is required"})
		return
	}

	month, _ := strconv.Atoi(c.PostForm("month"))
	year, _ := strconv.Atoi(c.PostForm("year"))

	var sheets map[string]string
	if raw := c.PostForm("sheets"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sheets); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "sheets must be a JSON object of slot to sheet name"})
			return
		}
	}

	var rows map[string][2]int
	if raw := c.PostForm("rows"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rows must be a JSON object of slot to [start, end]"})
			return
		}
	}

	// Uploads keep their original filename behind a unique prefix; month
	// detection reads the name.
	uploadDir := filepath.Join(h.dataDir, "uploads")
	var paths []string
	defer func() {
		for _, p := range paths {
			_ = os.Remove(p)
		}
	}()
	for _, upload := range uploads {
		path := filepath.Join(uploadDir, fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(upload.Filename)))
		if err := c.SaveUploadedFile(upload, path); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save uploaded file"})
			return
		}
		paths = append(paths, path)
	}

	result, err := h.coordinator.Convert(converter.Options{
		Department: dept,
		Files:      paths,
		Month:      month,
		Year:       year,
		Sheets:     sheets,
		Rows:       rows,
	})
	if err != nil {
		h.log.Warn("conversion failed", zap.String("department", dept), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if len(result.NeedsInput) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"needsInput": result.NeedsInput,
			"department": result.Department,
			"month":      result.Month,
			"year":       result.Year,
		})
		return
	}

	links, err := h.writeExports(result)
	if err != nil {
		h.log.Error("failed to write export files", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write export files"})
		return
	}

	sample := result.Records
	if len(sample) > sampleLimit {
		sample = sample[:sampleLimit]
	}

	c.JSON(http.StatusOK, ConvertResponse{
		Department:    result.Department,
		Month:         result.Month,
		Year:          result.Year,
		RecordCount:   len(result.Records),
		ExpectedCount: result.ExpectedCount,
		Warnings:      result.Warnings,
		Sample:        sample,
		Downloads:     links,
	})
}

// writeExports writes the CSV and XLSX import files to the exports
// directory and registers one-time download tokens for both.
func (h *Handler) writeExports(result *converter.Result) (DownloadLinks, error) {
	exportDir := filepath.Join(h.dataDir, "exports")

	csvName := exporter.Filename(result.Year, result.Month, "csv")
	csvPath := filepath.Join(exportDir, fmt.Sprintf("%s_%s", uuid.NewString(), csvName))
	if err := exporter.WriteCSVFile(csvPath, result.Records); err != nil {
		return DownloadLinks{}, err
	}

	xlsxName := exporter.Filename(result.Year, result.Month, "xlsx")
	xlsxPath := filepath.Join(exportDir, fmt.Sprintf("%s_%s", uuid.NewString(), xlsxName))
	if err := exporter.WriteXLSXFile(xlsxPath, result.Records); err != nil {
		_ = os.Remove(csvPath)
		return DownloadLinks{}, err
	}

	csvToken := h.downloads.put(csvPath, csvName, "text/csv", h.downloadTTL)
	xlsxToken := h.downloads.put(xlsxPath, xlsxName,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", h.downloadTTL)

	return DownloadLinks{
		CSV:  "/api/download/" + csvToken,
		XLSX: "/api/download/" + xlsxToken,
	}, nil
}

// Download streams a generated export file once.
// GET /api/download/:token
func (h *Handler) Download(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download link expired"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "export file no longer exists"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.filename))
	c.Header("Content-Type", item.contentType)
	c.File(item.filePath)

	h.downloads.delete(token)
	_ = os.Remove(item.filePath)
}
