// Package storage persists the serialized catalog under a single named key.
package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Slot is one named key holding an opaque blob. Read returns (nil, nil) when
// nothing has been written yet. Write replaces the whole value.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}

// Options select and locate a backend.
type Options struct {
	Backend string
	Dir     string // directory for the JSON file backend
	DBPath  string // database file for the sqlite backend
	Key     string
}

// Open returns the slot described by opts.
func Open(ctx context.Context, opts Options) (Slot, error) {
	key := strings.TrimSpace(opts.Key)
	if key == "" {
		return nil, fmt.Errorf("slot key is empty")
	}
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendFile:
		f, err := NewFile(opts.Dir, key)
		if err != nil {
			return nil, err
		}
		return f, nil
	case BackendSQLite:
		db, err := OpenSQLite(ctx, opts.DBPath, key)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// Memory is an in-process slot, used by tests and dry runs.
type Memory struct {
	mu     sync.Mutex
	data   []byte
	writes int
	err    error
}

// NewMemory returns a memory slot pre-loaded with data (may be nil).
func NewMemory(data []byte) *Memory {
	return &Memory{data: cloneBytes(data)}
}

// Read implements Slot.
func (m *Memory) Read(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneBytes(m.data), nil
}

// Write implements Slot. When FailWrites is set the value is left unchanged.
func (m *Memory) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data = cloneBytes(data)
	m.writes++
	return nil
}

// Close implements Slot.
func (m *Memory) Close() error { return nil }

// Writes returns how many successful writes happened.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FailWrites makes every later Write return err (nil restores writes).
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	dup := make([]byte, len(b))
	copy(dup, b)
	return dup
}
