package widget

import (
	"sync"

	"github.com/nguyentantai21042004/summarify/internal/logger"
	"github.com/nguyentantai21042004/summarify/internal/summarize"
)

type implWidget struct {
	client    summarize.Client
	clipboard Clipboard
	logger    logger.Logger

	mu         sync.Mutex
	state      State
	invalid    bool
	generation uint64
	onChange   func(State)
}

// New creates an empty Widget. clipboard may be nil, in which case Copy is a no-op.
func New(client summarize.Client, clipboard Clipboard, log logger.Logger) Widget {
	return &implWidget{
		client:    client,
		clipboard: clipboard,
		logger:    log,
	}
}
