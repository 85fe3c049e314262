package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func TestLines(t *testing.T) {
	var all []string
	for i := 1; i <= 10; i++ {
		all = append(all, fmt.Sprintf("Line %d", i))
	}
	logPath := writeLog(t, all)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "zero", maxLines: 0, expected: nil},
		{name: "negative", maxLines: -1, expected: nil},
		{name: "partial", maxLines: 5, expected: all[5:]},
		{name: "exact", maxLines: 10, expected: all},
		{name: "more than exists", maxLines: 20, expected: all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lines(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Lines() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lines() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLines_MissingFile(t *testing.T) {
	got, err := Lines(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Lines() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Lines() = %v, want nil", got)
	}
}

func TestDecode(t *testing.T) {
	line := `{"level":"info","ts":"2026-03-01T10:20:30.000+0000","caller":"state/store.go:90","msg":"product added","id":1700000000000,"name":"Chair"}`
	got := Decode(line)

	if got.Level != "info" {
		t.Errorf("Level = %q, want info", got.Level)
	}
	if got.Message != "product added" {
		t.Errorf("Message = %q, want %q", got.Message, "product added")
	}
	want := time.Date(2026, 3, 1, 10, 20, 30, 0, time.UTC)
	if !got.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", got.Time, want)
	}
	if _, ok := got.Fields["caller"]; ok {
		t.Errorf("caller should not be a field")
	}
	if got.Fields["name"] != "Chair" {
		t.Errorf("Fields[name] = %q, want Chair", got.Fields["name"])
	}
	if got.Fields["id"] != "1700000000000" {
		t.Errorf("Fields[id] = %q, want 1700000000000", got.Fields["id"])
	}
	if keys := got.FieldKeys(); !reflect.DeepEqual(keys, []string{"id", "name"}) {
		t.Errorf("FieldKeys() = %v", keys)
	}
}

func TestDecode_RawFallback(t *testing.T) {
	got := Decode("panic: something broke")
	if got.Message != "panic: something broke" || got.Level != "" || got.Fields != nil {
		t.Fatalf("Decode() = %#v, want message-only entry", got)
	}
}

func TestRead(t *testing.T) {
	path := writeLog(t, []string{
		`{"level":"debug","msg":"first"}`,
		"",
		`{"level":"warn","msg":"catalog slot unreadable"}`,
		"not json",
	})

	entries, err := Read(path, 3)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Read() returned %d entries, want 2", len(entries))
	}
	if entries[0].Level != "warn" || entries[1].Message != "not json" {
		t.Errorf("Read() = %#v", entries)
	}
}
