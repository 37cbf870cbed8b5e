package export

import (
	"context"

	"github.com/nguyentantai21042004/summarify/internal/summarize"
)

// Exporter writes a summarize result next to other results in an output directory.
type Exporter interface {
	// Export writes <name>.md and <name>.docx and returns the written paths.
	Export(ctx context.Context, name string, res summarize.Result) ([]string, error)
}
