package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"github.com/five82/catalog/internal/storage"
)

// Config captures where the catalog lives and how it is presented.
type Config struct {
	DataDir  string
	Backend  string
	SlotKey  string
	Locale   string
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/catalog/config.toml"
	defaultDataDir    = "~/.local/share/catalog"
	defaultSlotKey    = "productos"
	defaultLocale     = "en"
	defaultLogLevel   = "info"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:  mustExpand(defaultDataDir),
		Backend:  storage.BackendFile,
		SlotKey:  defaultSlotKey,
		Locale:   defaultLocale,
		LogLevel: defaultLogLevel,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir  string `toml:"data_dir"`
		Backend  string `toml:"backend"`
		SlotKey  string `toml:"slot_key"`
		Locale   string `toml:"locale"`
		LogLevel string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if backend := strings.ToLower(strings.TrimSpace(raw.Backend)); backend != "" {
		cfg.Backend = backend
	}
	if key := strings.TrimSpace(raw.SlotKey); key != "" {
		cfg.SlotKey = key
	}
	if locale := strings.TrimSpace(raw.Locale); locale != "" {
		cfg.Locale = locale
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot use.
func (c Config) Validate() error {
	switch c.Backend {
	case storage.BackendFile, storage.BackendSQLite:
	default:
		return fmt.Errorf("invalid backend %q (want %s or %s)", c.Backend, storage.BackendFile, storage.BackendSQLite)
	}
	if strings.ContainsAny(c.SlotKey, `/\`) {
		return fmt.Errorf("invalid slot_key %q: must not contain path separators", c.SlotKey)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// DataFilePath returns the JSON file used by the file backend.
func (c Config) DataFilePath() string {
	return filepath.Join(c.dataDir(), c.SlotKey+".json")
}

// DatabasePath returns the SQLite database used by the sqlite backend.
func (c Config) DatabasePath() string {
	return filepath.Join(c.dataDir(), "catalog.db")
}

// LogPath returns the structured log file path.
func (c Config) LogPath() string {
	return filepath.Join(c.dataDir(), "catalog.log")
}

// StorageOptions maps the config onto storage.Open options.
func (c Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend: c.Backend,
		Dir:     c.dataDir(),
		DBPath:  c.DatabasePath(),
		Key:     c.SlotKey,
	}
}

func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
