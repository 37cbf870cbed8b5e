package inbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/summarify/internal/config"
	"github.com/nguyentantai21042004/summarify/internal/logger"
	"github.com/nguyentantai21042004/summarify/internal/summarize"
)

type fakeClient struct {
	calls  int
	result summarize.Result
	err    error
	// when set, Summarize signals it and waits for ctx to end
	started chan struct{}
}

func (c *fakeClient) Summarize(ctx context.Context, file summarize.File) (summarize.Result, error) {
	c.calls++
	if c.started != nil {
		close(c.started)
		<-ctx.Done()
		return summarize.Result{}, fmt.Errorf("send request: %w", ctx.Err())
	}
	return c.result, c.err
}

type fakeExporter struct {
	names   []string
	results []summarize.Result
	err     error
}

func (e *fakeExporter) Export(ctx context.Context, name string, res summarize.Result) ([]string, error) {
	e.names = append(e.names, name)
	e.results = append(e.results, res)
	return nil, e.err
}

func setup(t *testing.T, name string, size int) (config.PathsConfig, string) {
	t.Helper()
	root := t.TempDir()
	paths := config.PathsConfig{
		Inbox:    filepath.Join(root, "inbox"),
		Output:   filepath.Join(root, "out"),
		Archived: filepath.Join(root, "archived"),
		Rejected: filepath.Join(root, "rejected"),
	}
	if err := os.MkdirAll(paths.Inbox, 0755); err != nil {
		t.Fatal(err)
	}
	audioPath := filepath.Join(paths.Inbox, name)
	if err := os.WriteFile(audioPath, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
	return paths, audioPath
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestProcessSuccess(t *testing.T) {
	paths, audioPath := setup(t, "standup.mp3", 100)
	client := &fakeClient{result: summarize.Result{Transcribe: "T", Summary: "S"}}
	exp := &fakeExporter{}

	if err := New(paths, client, exp, logger.Discard()).Process(context.Background(), audioPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(exp.names) != 1 || exp.names[0] != "standup" {
		t.Errorf("exported %v, want [standup]", exp.names)
	}
	if exp.results[0] != client.result {
		t.Errorf("exported %+v", exp.results[0])
	}
	if exists(audioPath) {
		t.Error("audio should leave the inbox")
	}
	if !exists(filepath.Join(paths.Archived, "standup.mp3")) {
		t.Error("audio should be archived")
	}
}

func TestProcessRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name string
		size int
		want string
	}{
		{"empty", 0, "This file is empty"},
		{"too large", 1_000_001, "This file is greater than 1 MB."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, audioPath := setup(t, "clip.wav", tt.size)
			client := &fakeClient{}

			if err := New(paths, client, &fakeExporter{}, logger.Discard()).Process(context.Background(), audioPath); err != nil {
				t.Fatalf("Process() error = %v", err)
			}

			if client.calls != 0 {
				t.Errorf("client called %d times for an invalid file", client.calls)
			}
			if !exists(filepath.Join(paths.Rejected, "clip.wav")) {
				t.Error("audio should be moved to rejected")
			}
			note, err := os.ReadFile(filepath.Join(paths.Rejected, "clip.error.txt"))
			if err != nil {
				t.Fatal(err)
			}
			if strings.TrimSpace(string(note)) != tt.want {
				t.Errorf("note = %q, want %q", note, tt.want)
			}
		})
	}
}

func TestProcessRejectsFailedRequest(t *testing.T) {
	paths, audioPath := setup(t, "clip.wav", 10)
	client := &fakeClient{err: &summarize.APIError{StatusCode: 500, Message: "boom"}}
	exp := &fakeExporter{}

	if err := New(paths, client, exp, logger.Discard()).Process(context.Background(), audioPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(exp.names) != 0 {
		t.Error("nothing should be exported after a failure")
	}
	note, err := os.ReadFile(filepath.Join(paths.Rejected, "clip.error.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(note)) != "boom" {
		t.Errorf("note = %q, want boom", note)
	}
}

func TestProcessShutdownKeepsFile(t *testing.T) {
	paths, audioPath := setup(t, "clip.wav", 10)
	client := &fakeClient{started: make(chan struct{})}
	exp := &fakeExporter{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- New(paths, client, exp, logger.Discard()).Process(ctx, audioPath) }()

	<-client.started
	cancel()

	err := <-errCh
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Process() error = %v, want context.Canceled", err)
	}
	if !exists(audioPath) {
		t.Error("audio should stay in the inbox after shutdown")
	}
	if exists(filepath.Join(paths.Rejected, "clip.wav")) || exists(filepath.Join(paths.Rejected, "clip.error.txt")) {
		t.Error("nothing should be rejected after shutdown")
	}
	if len(exp.names) != 0 {
		t.Error("nothing should be exported after shutdown")
	}
}

func TestProcessExportError(t *testing.T) {
	paths, audioPath := setup(t, "clip.wav", 10)
	exp := &fakeExporter{err: errors.New("disk full")}

	err := New(paths, &fakeClient{}, exp, logger.Discard()).Process(context.Background(), audioPath)
	if err == nil {
		t.Fatal("expected export error")
	}
	if !exists(audioPath) {
		t.Error("audio should stay in the inbox when export fails")
	}
}

func TestProcessMissingFile(t *testing.T) {
	paths, _ := setup(t, "clip.wav", 10)
	err := New(paths, &fakeClient{}, &fakeExporter{}, logger.Discard()).Process(context.Background(), filepath.Join(paths.Inbox, "gone.wav"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}
