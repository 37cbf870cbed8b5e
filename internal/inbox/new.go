package inbox

import (
	"github.com/nguyentantai21042004/summarify/internal/config"
	"github.com/nguyentantai21042004/summarify/internal/export"
	"github.com/nguyentantai21042004/summarify/internal/logger"
	"github.com/nguyentantai21042004/summarify/internal/summarize"
)

type implProcessor struct {
	paths    config.PathsConfig
	client   summarize.Client
	exporter export.Exporter
	logger   logger.Logger
}

// New creates a Processor. Each processed file gets its own widget, so files never share request state.
func New(paths config.PathsConfig, client summarize.Client, exp export.Exporter, log logger.Logger) Processor {
	return &implProcessor{
		paths:    paths,
		client:   client,
		exporter: exp,
		logger:   log,
	}
}
