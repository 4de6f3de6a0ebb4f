package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sharadgeorge/oncall-converter/internal/config"
	_ "github.com/sharadgeorge/oncall-converter/internal/department/all"
	"github.com/sharadgeorge/oncall-converter/internal/logger"
	"github.com/sharadgeorge/oncall-converter/internal/server"
	"github.com/sharadgeorge/oncall-converter/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (config.toml wins when it sets one explicitly)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config file)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  On-Call Schedule Converter")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// Command-line flags override the config file.
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	zlog, err := logger.New(cfg.Server.DevMode)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	srv, err := server.NewServer(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize server", zap.Error(err))
	}
	defer srv.Close()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		zlog.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.Run(addr); err != nil {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("could not open a browser, visit %s manually\n", url)
		}
	} else {
		fmt.Printf("development mode: visit %s\n", url)
	}

	fmt.Println("\npress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nshutting down...")
}
