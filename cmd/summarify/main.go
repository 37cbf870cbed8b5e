package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/summarify/internal/clipboard"
	"github.com/nguyentantai21042004/summarify/internal/config"
	"github.com/nguyentantai21042004/summarify/internal/logger"
	"github.com/nguyentantai21042004/summarify/internal/summarize"
	"github.com/nguyentantai21042004/summarify/internal/ui"
	"github.com/nguyentantai21042004/summarify/internal/widget"
	"github.com/nguyentantai21042004/summarify/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file
	var logOut io.Writer = io.Discard
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, logOut)

	if cfg.API.ResolveBaseURL() == "" {
		log.Warn(ctx, "No API base URL configured; set %s or api.base_url", config.BaseURLEnv)
	}

	client := summarize.New(cfg.API.ResolveBaseURL, cfg.API.Timeout, nil, log)
	clip := clipboard.New(executor.New(), cfg.Clipboard.Command, log)
	w := widget.New(client, clip, log)

	log.Info(ctx, "Summarify UI started (timeout: %s)", cfg.API.Timeout)

	model := ui.New(ctx, w, cfg.Upload.Accept, log)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		log.Error(ctx, "UI error: %v", err)
		fmt.Fprintf(os.Stderr, "UI error: %v\n", err)
		os.Exit(1)
	}

	log.Info(ctx, "Summarify UI stopped")
}
