package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseSlot(t *testing.T, slot Slot) {
	t.Helper()
	ctx := context.Background()

	data, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, data, "fresh slot should read as absent")

	require.NoError(t, slot.Write(ctx, []byte(`[{"id":1}]`)))
	data, err = slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))

	require.NoError(t, slot.Write(ctx, []byte(`[]`)))
	data, err = slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestFileSlot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	slot, err := NewFile(dir, "productos")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "productos.json"), slot.Path())

	exerciseSlot(t, slot)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "productos.json", entries[0].Name())
}

func TestNewFile_RejectsBadInput(t *testing.T) {
	_, err := NewFile("  ", "productos")
	assert.Error(t, err)

	_, err = NewFile(t.TempDir(), "../escape")
	assert.Error(t, err)
}

func TestSQLiteSlot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "catalog.db")

	slot, err := OpenSQLite(ctx, path, "productos")
	require.NoError(t, err)
	exerciseSlot(t, slot)
	require.NoError(t, slot.Close())

	// Keys are independent rows in the same table.
	other, err := OpenSQLite(ctx, path, "other")
	require.NoError(t, err)
	defer other.Close()
	data, err := other.Read(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	reopened, err := OpenSQLite(ctx, path, "productos")
	require.NoError(t, err)
	defer reopened.Close()
	data, err = reopened.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	testCases := []struct {
		name    string
		opts    Options
		wantErr bool
		check   func(t *testing.T, s Slot)
	}{
		{
			name: "default backend is file",
			opts: Options{Dir: dir, Key: "productos"},
			check: func(t *testing.T, s Slot) {
				assert.IsType(t, &File{}, s)
			},
		},
		{
			name: "sqlite backend",
			opts: Options{Backend: "SQLite", DBPath: filepath.Join(dir, "catalog.db"), Key: "productos"},
			check: func(t *testing.T, s Slot) {
				assert.IsType(t, &SQLite{}, s)
			},
		},
		{name: "unknown backend", opts: Options{Backend: "redis", Dir: dir, Key: "k"}, wantErr: true},
		{name: "empty key", opts: Options{Dir: dir, Key: " "}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := Open(ctx, tc.opts)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer slot.Close()
			tc.check(t, slot)
		})
	}
}

func TestMemorySlot(t *testing.T) {
	mem := NewMemory(nil)
	exerciseSlot(t, mem)
	assert.Equal(t, 2, mem.Writes())

	boom := errors.New("disk full")
	mem.FailWrites(boom)
	assert.ErrorIs(t, mem.Write(context.Background(), []byte("x")), boom)

	data, err := mem.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data), "failed write must not change the value")
}
