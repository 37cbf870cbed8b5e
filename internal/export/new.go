package export

import (
	"time"

	"github.com/nguyentantai21042004/summarify/internal/logger"
)

type implExporter struct {
	outputDir string
	logger    logger.Logger
	now       func() time.Time
}

// New creates an Exporter writing into outputDir.
func New(outputDir string, log logger.Logger) Exporter {
	return &implExporter{
		outputDir: outputDir,
		logger:    log,
		now:       time.Now,
	}
}
