package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/catalog/internal/catalog"
	"github.com/five82/catalog/internal/config"
	"github.com/five82/catalog/internal/logging"
	"github.com/five82/catalog/internal/prefs"
	"github.com/five82/catalog/internal/state"
	"github.com/five82/catalog/internal/storage"
	"github.com/five82/catalog/internal/ui"
)

// Options configure the catalog application.
type Options struct {
	ConfigPath string // empty uses ~/.config/catalog/config.toml
	PrefsPath  string // empty uses ~/.config/catalog/prefs.toml
	Verbose    bool
}

// Env holds the wired dependencies shared by the TUI and the subcommands.
type Env struct {
	Config config.Config
	Logger *zap.Logger
	Prefs  *prefs.File
	Slot   storage.Slot
	Store  *state.Store
	Sorter *catalog.Sorter
}

// Open loads config, starts logging, opens the slot and loads the store.
func Open(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Path:    cfg.LogPath(),
		Level:   cfg.LogLevel,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	slot, err := storage.Open(ctx, cfg.StorageOptions())
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open catalog slot: %w", err)
	}

	store, err := state.Load(ctx, slot, state.WithLogger(logger.Named("store")))
	if err != nil {
		_ = slot.Close()
		_ = logger.Sync()
		return nil, err
	}

	logger.Debug("catalog opened",
		zap.String("backend", cfg.Backend),
		zap.String("slot", cfg.SlotKey),
		zap.String("locale", cfg.Locale),
		zap.Int("count", store.Len()),
	)

	return &Env{
		Config: cfg,
		Logger: logger,
		Prefs:  prefs.Open(opts.PrefsPath, logger.Named("prefs")),
		Slot:   slot,
		Store:  store,
		Sorter: catalog.NewSorter(cfg.Locale),
	}, nil
}

// Close releases the slot and flushes the logger.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	return errors.Join(e.Slot.Close(), e.Logger.Sync())
}

// Run boots the catalog TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	userPrefs := env.Prefs.Load()
	env.Logger.Info("tui starting", zap.String("theme", userPrefs.Theme))

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     env.Store,
		Sorter:    env.Sorter,
		Prefs:     env.Prefs,
		ThemeName: userPrefs.Theme,
		LogPath:   env.Config.LogPath(),
		Logger:    env.Logger.Named("ui"),
	})
	if err != nil {
		env.Logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	env.Logger.Info("tui stopped")
	return nil
}
