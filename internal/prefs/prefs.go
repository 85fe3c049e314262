// Package prefs handles catalog user preferences persistence.
// Preferences are stored in ~/.config/catalog/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// Prefs holds user preferences that survive restarts. Catalog view state
// (search, sort, page) is not part of it.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/catalog/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// File reads and writes preferences at a fixed path.
type File struct {
	path string
	log  *zap.Logger
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Open resolves path (empty means the default location). Resolution failures
// are logged and leave the File unable to save, but Load still works.
func Open(path string, log *zap.Logger) *File {
	if log == nil {
		log = zap.NewNop()
	}
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		log.Warn("prefs path unusable", zap.String("path", path), zap.Error(err))
		resolved = ""
	}
	return &File{path: resolved, log: log}
}

// Path returns the resolved preferences path, or "" when unresolvable.
func (f *File) Path() string { return f.path }

// Load reads preferences, degrading to defaults on any problem.
func (f *File) Load() Prefs {
	prefs := Defaults()
	if f.path == "" {
		return prefs
	}

	bytes, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.log.Warn("prefs unreadable, using defaults", zap.String("path", f.path), zap.Error(err))
		}
		return prefs
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		f.log.Warn("prefs invalid, using defaults", zap.String("path", f.path), zap.Error(err))
		return Defaults()
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	return prefs
}

// Save writes preferences, creating directories as needed.
func (f *File) Save(p Prefs) error {
	if f.path == "" {
		return fmt.Errorf("prefs path unresolved")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(f.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	f.log.Debug("prefs saved", zap.String("theme", p.Theme))
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
