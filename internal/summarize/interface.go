package summarize

import "context"

// Client sends an audio file to the summarization endpoint.
type Client interface {
	Summarize(ctx context.Context, file File) (Result, error)
}

// Result is the transcript and its condensed summary as returned by the endpoint.
type Result struct {
	Transcribe string `json:"transcribe"`
	Summary    string `json:"summary"`
}
