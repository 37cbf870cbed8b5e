package summarize

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is an audio file picked for upload. Only its name and size are kept in memory.
type File struct {
	Name string
	Size int64
	open func() (io.ReadCloser, error)
}

// FileFromPath stats path and returns a File that reads from disk on upload.
func FileFromPath(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat audio file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &File{
		Name: filepath.Base(path),
		Size: info.Size(),
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// FileFromBytes wraps in-memory data.
func FileFromBytes(name string, data []byte) *File {
	return &File{
		Name: name,
		Size: int64(len(data)),
		open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

// Open returns a reader over the file contents.
func (f File) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, ErrNoFile
	}
	return f.open()
}
