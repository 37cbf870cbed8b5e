package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/summarify/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	extensions    map[string]bool
	settle        time.Duration
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup

	mu     sync.Mutex
	active map[string]bool
}

// Start handles audio files already in the input directory, then new ones as they appear.
// It returns when ctx is cancelled, after in-flight handlers finish.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	existing, err := w.existingFiles()
	if err != nil {
		return fmt.Errorf("scan input dir: %w", err)
	}
	for _, path := range existing {
		w.logger.Info(ctx, "Found pending audio: %s", path)
		if err := w.dispatch(ctx, path, 0); err != nil {
			return w.drain(ctx, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx, ctx.Err())

		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.drain(ctx, fmt.Errorf("watcher events channel closed"))
			}

			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.isAudioFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New audio detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name, w.settle); err != nil {
				return w.drain(ctx, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return w.drain(ctx, fmt.Errorf("watcher errors channel closed"))
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatch runs the handler in a goroutine once a semaphore slot is free.
// A path that is already being handled is skipped, so a file seen by both the
// startup scan and a create event is only processed once.
func (w *implWatcher) dispatch(ctx context.Context, path string, settle time.Duration) error {
	w.mu.Lock()
	if w.active[path] {
		w.mu.Unlock()
		w.logger.Debug(ctx, "Already handling %s", path)
		return nil
	}
	w.active[path] = true
	w.mu.Unlock()

	select {
	case w.semaphore <- struct{}{}:
	case <-ctx.Done():
		w.release(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.semaphore }()
		defer w.release(path)

		// Give the writer a moment to finish the file
		if settle > 0 {
			select {
			case <-time.After(settle):
			case <-ctx.Done():
				return
			}
		}

		// handled and moved away by an earlier dispatch
		if _, err := os.Stat(path); err != nil {
			w.logger.Debug(ctx, "Skipping %s: %v", path, err)
			return
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) release(path string) {
	w.mu.Lock()
	delete(w.active, path)
	w.mu.Unlock()
}

func (w *implWatcher) drain(ctx context.Context, err error) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return err
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) existingFiles() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		if w.isAudioFile(path) {
			files = append(files, path)
		}
	}

	sort.Strings(files)
	return files, nil
}

func (w *implWatcher) isAudioFile(path string) bool {
	return w.extensions[strings.ToLower(filepath.Ext(path))]
}
