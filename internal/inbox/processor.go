package inbox

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summarify/internal/summarize"
	"github.com/nguyentantai21042004/summarify/internal/widget"
)

// Process runs the select -> summarize flow for audioPath. Files that fail validation or
// summarization are moved to the rejected folder with a note; successful ones are exported
// and archived. Nothing is retried.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))

	file, err := summarize.FileFromPath(audioPath)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}

	w := widget.New(p.client, nil, p.logger)
	w.Select(ctx, file)

	if msg := w.State().Error; msg != "" {
		p.logger.Warn(ctx, "Rejected %s: %s", file.Name, msg)
		return p.reject(ctx, audioPath, msg)
	}

	p.logger.Info(ctx, "Summarizing %s (%s)", file.Name, summarize.ConvertSize(file.Size))
	if !w.Summarize(ctx) {
		return fmt.Errorf("summarize %s: request was not started", file.Name)
	}

	// shutting down: leave the file in the inbox for the next run
	if err := ctx.Err(); err != nil {
		p.logger.Warn(ctx, "Summarize %s interrupted: %v", file.Name, err)
		return fmt.Errorf("summarize %s interrupted: %w", file.Name, err)
	}

	st := w.State()
	if st.Error != "" {
		p.logger.Error(ctx, "Summarize %s failed: %s", file.Name, st.Error)
		return p.reject(ctx, audioPath, st.Error)
	}
	if st.Result == nil {
		return fmt.Errorf("summarize %s: no result", file.Name)
	}

	if _, err := p.exporter.Export(ctx, name, *st.Result); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := p.moveTo(ctx, audioPath, p.paths.Archived); err != nil {
		p.logger.Warn(ctx, "Failed to move %s to archived folder: %v", audioPath, err)
	}

	p.logger.Info(ctx, "Processed %s in %s", file.Name, time.Since(startTime).Round(time.Millisecond))
	return nil
}
