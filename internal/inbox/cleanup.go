package inbox

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// moveTo moves a file into dir, keeping its name
func (p *implProcessor) moveTo(ctx context.Context, path, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	dest := filepath.Join(dir, filepath.Base(path))
	p.logger.Debug(ctx, "Moving %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move %s: %w", path, err)
	}
	return nil
}

// reject moves the audio to the rejected folder and writes the reason next to it
func (p *implProcessor) reject(ctx context.Context, path, reason string) error {
	if err := p.moveTo(ctx, path, p.paths.Rejected); err != nil {
		return err
	}

	base := filepath.Base(path)
	note := filepath.Join(p.paths.Rejected, strings.TrimSuffix(base, filepath.Ext(base))+".error.txt")
	if err := os.WriteFile(note, []byte(reason+"\n"), 0644); err != nil {
		p.logger.Warn(ctx, "Failed to write rejection note %s: %v", note, err)
	}
	return nil
}
