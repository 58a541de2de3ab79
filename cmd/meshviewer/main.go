// Package main is the entry point for the interactive mesh viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/meshstats/internal/config"
	"github.com/Faultbox/meshstats/internal/logger"
	"github.com/Faultbox/meshstats/internal/viewer"
)

var flagScript = flag.String("script", "", "Run JSON commands from file and exit")

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Mesh Stats Viewer ===")
	logger.Debug("config loaded",
		zap.String("file", config.ConfigPath()),
		zap.Int("workers", cfg.Engine.Workers),
		zap.String("meshDir", cfg.Viewer.MeshDir),
		zap.Bool("dialogs", cfg.Viewer.Dialogs),
	)

	v := viewer.NewFromConfig(cfg)

	// Positional argument opens a mesh at startup
	if args := config.Args(); len(args) > 0 {
		if err := v.Execute(viewer.Command{Action: "open", Path: args[0]}, os.Stdout); err != nil {
			logger.Warn("startup mesh not loaded", zap.String("path", args[0]), zap.Error(err))
		}
	}

	if *flagScript != "" {
		if err := runScript(v, *flagScript); err != nil {
			logger.Fatal("script failed", zap.String("script", *flagScript), zap.Error(err))
		}
		return
	}

	fmt.Println(`Type "help" for a list of commands.`)
	if err := v.Run(os.Stdin, os.Stdout, "> "); err != nil {
		logger.Fatal("reading commands", zap.Error(err))
	}

	logger.Info("viewer closed normally")
}

func runScript(v *viewer.Viewer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return v.RunScript(f, os.Stdout)
}
