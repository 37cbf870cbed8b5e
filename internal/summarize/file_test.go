package summarize

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.mp3")
	if err := os.WriteFile(path, []byte("ID3data"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := FileFromPath(path)
	if err != nil {
		t.Fatalf("FileFromPath() error = %v", err)
	}
	if f.Name != "memo.mp3" || f.Size != 7 {
		t.Errorf("file = %s (%d), want memo.mp3 (7)", f.Name, f.Size)
	}

	rc, err := f.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "ID3data" {
		t.Errorf("contents = %q", data)
	}
}

func TestFileFromPathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := FileFromPath(dir); err == nil {
		t.Error("expected error for directory")
	}
	if _, err := FileFromPath(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}
