package widget

import (
	"context"

	"github.com/nguyentantai21042004/summarify/internal/summarize"
)

const (
	MaxAudioSize = 1_000_000

	MsgEmptyFile    = "This file is empty"
	MsgFileTooLarge = "This file is greater than 1 MB."
)

// Validate returns the message shown for a file that cannot be summarized, or "".
func Validate(file *summarize.File) string {
	switch {
	case file.Size == 0:
		return MsgEmptyFile
	case file.Size > MaxAudioSize:
		return MsgFileTooLarge
	default:
		return ""
	}
}

func (w *implWidget) Select(ctx context.Context, file *summarize.File) {
	w.mu.Lock()
	w.state.Result = nil
	w.state.Error = ""

	if file != nil {
		w.state.File = file
		w.generation++
		w.logger.Debug(ctx, "Selected %s (%s)", file.Name, summarize.ConvertSize(file.Size))
	}
	// a dismissed picker keeps the previous file, and with it its validation message
	if w.state.File != nil {
		w.state.Error = Validate(w.state.File)
	}
	w.invalid = w.state.Error != ""
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.notify(snap)
}

// Summarize is a no-op without a file, while a request is in flight, or when the
// selected file failed validation.
func (w *implWidget) Summarize(ctx context.Context) bool {
	w.mu.Lock()
	if w.state.File == nil || w.state.Loading || w.invalid {
		w.mu.Unlock()
		return false
	}
	file := *w.state.File
	gen := w.generation
	w.state.Loading = true
	w.state.Error = ""
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.notify(snap)

	res, err := w.client.Summarize(ctx, file)

	w.mu.Lock()
	w.state.Loading = false
	switch {
	case gen != w.generation:
		w.logger.Debug(ctx, "Dropping result for %s: selection changed", file.Name)
	case err != nil:
		w.logger.Warn(ctx, "Summarize %s failed: %v", file.Name, err)
		w.state.Error = err.Error()
	default:
		w.state.Result = &res
	}
	snap = w.snapshotLocked()
	w.mu.Unlock()

	w.notify(snap)
	return true
}

func (w *implWidget) RemoveFile() {
	w.mu.Lock()
	w.state.File = nil
	w.invalid = false
	w.generation++
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.notify(snap)
}

func (w *implWidget) Reset() {
	w.mu.Lock()
	w.state.File = nil
	w.state.Result = nil
	w.state.Error = ""
	w.invalid = false
	w.generation++
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.notify(snap)
}

func (w *implWidget) Copy(ctx context.Context, field Field) error {
	w.mu.Lock()
	var text string
	if w.state.Result != nil {
		switch field {
		case FieldTranscribe:
			text = w.state.Result.Transcribe
		case FieldSummary:
			text = w.state.Result.Summary
		}
	}
	w.mu.Unlock()

	if text == "" || w.clipboard == nil {
		return nil
	}

	if err := w.clipboard.WriteText(ctx, text); err != nil {
		return err
	}
	w.logger.Debug(ctx, "Copied %s to clipboard", field)
	return nil
}

func (w *implWidget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *implWidget) OnChange(fn func(State)) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

func (w *implWidget) snapshotLocked() State {
	snap := w.state
	if w.state.Result != nil {
		res := *w.state.Result
		snap.Result = &res
	}
	return snap
}

func (w *implWidget) notify(snap State) {
	w.mu.Lock()
	fn := w.onChange
	w.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
