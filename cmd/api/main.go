package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-assistant/config"
	"personal-assistant/internal/wiring"
)

// @title       Personal Assistant API
// @description Plugin-routing personal assistant with per-session conversation history.
// @version     1
// @host        localhost:8501
// @schemes     http
func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := wiring.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s...", cfg.Assistant.Name)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.AI.APIKey == "" {
		logger.Warn(ctx, "No AI API key configured, conversational replies are placeholders")
	}

	// 3. HTTP Server
	httpServer, err := wiring.New(cfg, logger).NewHTTPServer()
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
