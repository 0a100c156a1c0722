package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Disk implements Store on the local filesystem.
// With an empty root, keys are used as given (absolute or relative to the
// working directory). With a root, keys are resolved inside it and may not
// escape it.
type Disk struct {
	root string
}

// NewDisk creates a local filesystem store.
func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Get opens the file referenced by key.
func (d *Disk) Get(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := d.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, key)
		default:
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, key)
	}

	return f, nil
}

// Stat returns the size of the file referenced by key.
// ContentType is left empty; callers sniff it from the content.
func (d *Disk) Stat(_ context.Context, key string) (*FileInfo, error) {
	path, err := d.resolve(key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, key)
		default:
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, key)
	}

	return &FileInfo{Key: key, Size: info.Size()}, nil
}

func (d *Disk) resolve(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrNotFound)
	}
	if d.root == "" {
		return key, nil
	}

	clean := filepath.Clean(string(filepath.Separator) + key)
	path := filepath.Join(d.root, clean)
	if !strings.HasPrefix(path, filepath.Clean(d.root)) {
		return "", fmt.Errorf("%w: %s escapes root", ErrAccessDenied, key)
	}
	return path, nil
}

var (
	_ Store   = (*Disk)(nil)
	_ Statter = (*Disk)(nil)
)
