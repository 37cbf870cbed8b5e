// Package clipboard writes text to the system clipboard through the platform copy command.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/nguyentantai21042004/summarify/internal/logger"
	"github.com/nguyentantai21042004/summarify/pkg/executor"
)

var ErrUnavailable = errors.New("no clipboard command found")

// Clipboard satisfies widget.Clipboard.
type Clipboard struct {
	exec     executor.Executor
	logger   logger.Logger
	override []string
	goos     string
	getenv   func(string) string
}

// New creates a Clipboard. A non-empty command replaces platform detection.
func New(exec executor.Executor, command []string, log logger.Logger) *Clipboard {
	return &Clipboard{
		exec:     exec,
		logger:   log,
		override: command,
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
	}
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	cmd, err := c.command()
	if err != nil {
		return err
	}

	if _, err := c.exec.ExecuteWithInput(ctx, strings.NewReader(text), cmd[0], cmd[1:]...); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	c.logger.Debug(ctx, "Copied %d bytes with %s", len(text), cmd[0])
	return nil
}

func (c *Clipboard) command() ([]string, error) {
	if len(c.override) > 0 {
		return c.override, nil
	}

	switch c.goos {
	case "darwin":
		return []string{"pbcopy"}, nil
	case "windows":
		return []string{"clip"}, nil
	}

	candidates := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	}
	if c.getenv("WAYLAND_DISPLAY") != "" {
		candidates = append([][]string{{"wl-copy"}}, candidates...)
	}

	for _, cand := range candidates {
		if c.exec.LookPath(cand[0]) {
			return cand, nil
		}
	}

	return nil, ErrUnavailable
}
