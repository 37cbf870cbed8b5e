package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/summarify/internal/logger"
	"github.com/nguyentantai21042004/summarify/internal/summarize"
	"github.com/nguyentantai21042004/summarify/internal/widget"
)

type fakeClient struct {
	calls  int
	result summarize.Result
	err    error
}

func (c *fakeClient) Summarize(ctx context.Context, file summarize.File) (summarize.Result, error) {
	c.calls++
	return c.result, c.err
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) WriteText(ctx context.Context, text string) error {
	c.text = text
	return nil
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, client *fakeClient, clip widget.Clipboard) Model {
	t.Helper()
	w := widget.New(client, clip, logger.Discard())
	return New(context.Background(), w, []string{".wav", ".mp3", ".mp4"}, logger.Discard())
}

func writeAudio(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memo.wav")
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes cmd and feeds its message back into the model.
func run(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestSummarizeWithoutFileIsNoop(t *testing.T) {
	client := &fakeClient{}
	m := newTestModel(t, client, nil)

	_, cmd := m.Update(key("s"))
	if cmd != nil {
		t.Error("expected no command without a file")
	}
	if client.calls != 0 {
		t.Errorf("client called %d times", client.calls)
	}
}

func TestSelectAndSummarize(t *testing.T) {
	client := &fakeClient{result: summarize.Result{Transcribe: "hello transcript", Summary: "short summary"}}
	m := newTestModel(t, client, nil)

	m.selectPath(writeAudio(t, 10))
	if m.state.File == nil {
		t.Fatal("file not selected")
	}
	if !strings.Contains(m.View(), "memo.wav") {
		t.Error("view should show the selected file name")
	}

	next, cmd := m.Update(key("s"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected summarize command")
	}

	// the command blocks on the request and reports back when it resolves
	next, _ = m.Update(cmd())
	m = next.(Model)

	if client.calls != 1 {
		t.Errorf("client called %d times, want 1", client.calls)
	}
	view := m.View()
	for _, want := range []string{"hello transcript", "short summary", "[t] copy", "[y] copy"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSelectShowsValidationError(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, nil)
	m.selectPath(writeAudio(t, 0))

	if !strings.Contains(m.View(), widget.MsgEmptyFile) {
		t.Error("view should show the empty file error")
	}
}

func TestSelectMissingPath(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, nil)
	m.selectPath(filepath.Join(t.TempDir(), "missing.wav"))

	if m.state.File != nil {
		t.Error("missing file should not be selected")
	}
	if m.status == "" {
		t.Error("expected a status message")
	}
}

func TestCleanAndRemove(t *testing.T) {
	client := &fakeClient{result: summarize.Result{Summary: "S"}}
	m := newTestModel(t, client, nil)
	m.selectPath(writeAudio(t, 10))

	next, cmd := m.Update(key("s"))
	m = next.(Model)
	next, _ = m.Update(cmd())
	m = next.(Model)

	next, _ = m.Update(key("d"))
	m = next.(Model)
	if m.state.File != nil || m.state.Result == nil {
		t.Errorf("after remove: %+v", m.state)
	}

	next, _ = m.Update(key("c"))
	m = next.(Model)
	if m.state.Result != nil {
		t.Error("clean should clear the result")
	}
}

func TestCopyKeys(t *testing.T) {
	clip := &fakeClipboard{}
	client := &fakeClient{result: summarize.Result{Transcribe: "T", Summary: "S"}}
	m := newTestModel(t, client, clip)
	m.selectPath(writeAudio(t, 10))

	next, cmd := m.Update(key("s"))
	m = next.(Model)
	next, _ = m.Update(cmd())
	m = next.(Model)

	_, cmd = m.Update(key("y"))
	m = run(m, cmd)

	if clip.text != "S" {
		t.Errorf("clipboard = %q, want S", clip.text)
	}
	if !strings.Contains(m.status, "summary") {
		t.Errorf("status = %q", m.status)
	}
}

func TestPickerOpenAndClose(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, nil)

	next, _ := m.Update(key("o"))
	m = next.(Model)
	if !m.picking {
		t.Fatal("o should open the picker")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.picking {
		t.Error("tab should close the picker")
	}
}

func TestRenderFailureIsFinal(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, nil)
	m.renderBody = func(Model) string { panic("boom") }

	if got := m.View(); !strings.Contains(got, fallbackText) {
		t.Fatalf("View() = %q, want fallback", got)
	}

	m.renderBody = Model.body
	if got := m.View(); !strings.Contains(got, fallbackText) {
		t.Errorf("View() = %q, fallback should persist", got)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &fakeClient{}, nil)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
