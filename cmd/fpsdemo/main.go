package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"firstperson/internal/config"
	"firstperson/internal/game"
)

func main() {
	configPath := flag.String("config", "assets/config/player.yaml", "path to the YAML config")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Printf("chdir %s: %v", execDir, err)
			}
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	g, err := game.New(cfg, *configPath)
	if err != nil {
		log.Fatalf("game: %v", err)
	}
	g.Run()
}
