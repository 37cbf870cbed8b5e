package widget

import (
	"context"

	"github.com/nguyentantai21042004/summarify/internal/summarize"
)

// Widget holds the state of one upload-and-summarize form.
type Widget interface {
	// Select replaces the selected file and clears the previous error and result.
	// A nil file leaves the previous selection in place.
	Select(ctx context.Context, file *summarize.File)
	// Summarize sends the selected file and reports whether a request was made.
	Summarize(ctx context.Context) bool
	RemoveFile()
	Reset()
	// Copy writes one of the result strings to the clipboard. Empty strings are skipped.
	Copy(ctx context.Context, field Field) error
	State() State
	// OnChange registers fn to be called with a snapshot after every state change.
	OnChange(fn func(State))
}

// Clipboard receives text from Copy.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

type Field int

const (
	FieldTranscribe Field = iota
	FieldSummary
)

func (f Field) String() string {
	switch f {
	case FieldTranscribe:
		return "transcribe"
	case FieldSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// State is a snapshot of the widget.
type State struct {
	File    *summarize.File
	Loading bool
	Error   string
	Result  *summarize.Result
}
