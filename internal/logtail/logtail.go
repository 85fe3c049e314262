package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/five82/catalog/internal/logging"
)

// Entry is one decoded log line.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Fields  map[string]string
}

// Lines returns at most maxLines from the end of the file at path. A missing
// file yields no lines.
func Lines(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Read returns the last maxLines log lines decoded into entries, oldest first.
func Read(path string, maxLines int) ([]Entry, error) {
	lines, err := Lines(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, Decode(line))
	}
	return entries, nil
}

// Decode parses one JSON log line. Lines that are not JSON objects come back
// as a message-only entry.
func Decode(line string) Entry {
	var raw map[string]any
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return Entry{Message: line}
	}

	var entry Entry
	for k, v := range raw {
		switch k {
		case "ts":
			if s, ok := v.(string); ok {
				if t, err := time.Parse(logging.TimeLayout, s); err == nil {
					entry.Time = t
				}
			}
		case "level":
			entry.Level, _ = v.(string)
		case "msg":
			entry.Message, _ = v.(string)
		case "caller", "stacktrace":
		default:
			if entry.Fields == nil {
				entry.Fields = make(map[string]string)
			}
			entry.Fields[k] = fmt.Sprint(v)
		}
	}
	return entry
}

// FieldKeys returns the entry's field names in sorted order.
func (e Entry) FieldKeys() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
