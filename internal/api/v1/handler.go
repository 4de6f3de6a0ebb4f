// Package v1 implements the HTTP API: department discovery, directory
// queries and the upload-convert-download flow.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sharadgeorge/oncall-converter/internal/converter"
	"github.com/sharadgeorge/oncall-converter/internal/store"
)

// Handler V1 API handler.
type Handler struct {
	coordinator *converter.Coordinator
	store       *store.Store
	log         *zap.Logger
	dataDir     string
	downloadTTL time.Duration
	downloads   *downloadStore
}

// NewHandler creates the V1 API handler.
func NewHandler(coordinator *converter.Coordinator, st *store.Store, log *zap.Logger, dataDir string, downloadTTL time.Duration) *Handler {
	return &Handler{
		coordinator: coordinator,
		store:       st,
		log:         log,
		dataDir:     dataDir,
		downloadTTL: downloadTTL,
		downloads:   newDownloadStore(),
	}
}

// RegisterRoutes registers the V1 API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// system status
	router.GET("/status", h.GetStatus)

	// reference data
	router.GET("/departments", h.ListDepartments)
	router.GET("/employees", h.ListEmployees)

	// conversion
	router.POST("/convert", h.Convert)
	router.GET("/download/:token", h.Download)
}
