package summarize

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/summarify/internal/logger"
)

// DefaultTimeout bounds a single summarize request.
const DefaultTimeout = 45 * time.Second

const maxResponseBytes = 10 << 20

type implClient struct {
	baseURL    func() string
	timeout    time.Duration
	httpClient *http.Client
	logger     logger.Logger
	maxBody    int64
}

// New creates a Client. baseURL is called on every request; timeout <= 0 means DefaultTimeout.
func New(baseURL func() string, timeout time.Duration, httpClient *http.Client, log logger.Logger) Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &implClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: httpClient,
		logger:     log,
		maxBody:    maxResponseBytes,
	}
}
