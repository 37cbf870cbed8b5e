package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/summarify/internal/summarize"
)

func (e *implExporter) Export(ctx context.Context, name string, res summarize.Result) ([]string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Join(e.outputDir, name)

	mdPath := base + ".md"
	md := Markdown(name, e.now().Format("2006-01-02 15:04"), res)
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return nil, fmt.Errorf("write markdown: %w", err)
	}

	docxPath := base + ".docx"
	if err := resultToDocx(name, res, docxPath); err != nil {
		return []string{mdPath}, fmt.Errorf("write docx: %w", err)
	}

	e.logger.Info(ctx, "Exported %s -> %s, %s", name, mdPath, docxPath)
	return []string{mdPath, docxPath}, nil
}

// Markdown renders a result as a small document with a summary and a transcript section.
func Markdown(title, date string, res summarize.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n_%s_\n\n", title, date)
	b.WriteString("## Summary\n\n")
	b.WriteString(orPlaceholder(res.Summary))
	b.WriteString("\n\n## Transcript\n\n")
	b.WriteString(orPlaceholder(res.Transcribe))
	b.WriteString("\n")

	return b.String()
}

func orPlaceholder(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "_(empty)_"
	}
	return s
}
