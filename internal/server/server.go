// Package server wires the gin engine: API routes, CORS and the
// embedded upload page.
package server

import (
	"embed"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/sharadgeorge/oncall-converter/internal/api/v1"
	"github.com/sharadgeorge/oncall-converter/internal/config"
	"github.com/sharadgeorge/oncall-converter/internal/converter"
	"github.com/sharadgeorge/oncall-converter/internal/directory"
	"github.com/sharadgeorge/oncall-converter/internal/store"
)

//go:embed static/index.html
var staticFiles embed.FS

// Server HTTP server.
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
	log    *zap.Logger
}

// NewServer builds the server: opens the directory database, seeds it
// on first run, loads the in-memory directory and registers routes.
func NewServer(cfg *config.AppConfig, log *zap.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
		log.Warn("failed to prepare data directory", zap.Error(err))
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "directory.db"))
	if err != nil {
		return nil, err
	}
	if err := sqliteStore.SeedIfEmpty(); err != nil {
		return nil, err
	}

	entries, err := sqliteStore.ListEmployees("")
	if err != nil {
		return nil, err
	}
	dir := directory.New(entries)
	log.Info("employee directory loaded", zap.Int("entries", dir.Len()))

	coordinator := converter.New(dir, log)
	ttl := time.Duration(cfg.Export.DownloadTTLMinutes) * time.Minute
	handler := v1.NewHandler(coordinator, sqliteStore, log, dataDir, ttl)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		v1:     handler,
		log:    log,
	}

	s.setupRoutes()
	return s, nil
}

// setupRoutes registers middleware and routes.
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	// Upload page
	s.router.GET("/", func(c *gin.Context) {
		data, err := staticFiles.ReadFile("static/index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the directory database.
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore returns the store, for tests.
func (s *Server) GetStore() *store.Store {
	return s.store
}
