package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File stores the slot as <dir>/<key>.json.
type File struct {
	path string
}

// NewFile returns a file slot. The directory is created on first write.
func NewFile(dir, key string) (*File, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("data dir is empty")
	}
	if strings.ContainsAny(key, `/\`) {
		return nil, fmt.Errorf("slot key %q must not contain path separators", key)
	}
	return &File{path: filepath.Join(dir, key+".json")}, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Read implements Slot.
func (f *File) Read(context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot: %w", err)
	}
	return data, nil
}

// Write implements Slot. The value is written to a temp file and renamed into
// place so readers never observe a half-written catalog.
func (f *File) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close slot: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace slot: %w", err)
	}
	return nil
}

// Close implements Slot.
func (f *File) Close() error { return nil }
