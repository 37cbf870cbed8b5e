package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/summarify/internal/config"
	"github.com/nguyentantai21042004/summarify/internal/export"
	"github.com/nguyentantai21042004/summarify/internal/inbox"
	"github.com/nguyentantai21042004/summarify/internal/logger"
	"github.com/nguyentantai21042004/summarify/internal/summarize"
	"github.com/nguyentantai21042004/summarify/internal/watcher"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Info(ctx, "Summarify inbox")
	log.Info(ctx, "API: %s (timeout %s)", cfg.API.ResolveBaseURL(), cfg.API.Timeout)
	log.Info(ctx, "Accepting: %s", strings.Join(cfg.Upload.Accept, ", "))
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	client := summarize.New(cfg.API.ResolveBaseURL, cfg.API.Timeout, nil, log)
	proc := inbox.New(cfg.Paths, client, export.New(cfg.Paths.Output, log), log)

	w, err := watcher.New(cfg.Paths.Inbox, proc.Process, log, watcher.Options{
		Extensions:    cfg.Upload.Accept,
		MaxConcurrent: cfg.Performance.MaxConcurrent,
		Settle:        500 * time.Millisecond,
	})
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watcher error: %v", err)
		}
	}

	log.Info(ctx, "Inbox stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Rejected,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
