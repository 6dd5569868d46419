// ABOUTME: Builds the settings provider and platform gate from configuration
// ABOUTME: Wires sqlite, file and adb stores into a settings.Source

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/2389/devsignals/internal/config"
	"github.com/2389/devsignals/internal/settings"
	"github.com/2389/devsignals/internal/store"
)

// openStore opens the store selected by cfg.Provider.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Provider.Kind {
	case config.ProviderSQLite:
		s, err := store.NewSQLiteStoreWithDriver(cfg.Provider.Driver, cfg.Provider.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.ProviderFile:
		m, err := store.LoadFile(cfg.Provider.Path)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.ProviderADB:
		var opts []store.ADBOption
		if cfg.Provider.Serial != "" {
			opts = append(opts, store.WithSerial(cfg.Provider.Serial))
		}
		return store.NewADBStore(cfg.Provider.ADBPath, opts...), nil
	default:
		return nil, fmt.Errorf("unknown provider kind %q", cfg.Provider.Kind)
	}
}

// platformOptions picks the version source for gated signals: an explicit
// api_level wins, then the device itself when reading over adb. Otherwise
// every signal is treated as supported.
func platformOptions(ctx context.Context, cfg *config.Config, s store.Store, logger *slog.Logger) []settings.Option {
	if cfg.Platform.APILevel > 0 {
		level := cfg.Platform.APILevel
		return []settings.Option{settings.WithPlatformVersion(func() int { return level })}
	}

	if adb, ok := s.(*store.ADBStore); ok {
		return []settings.Option{settings.WithPlatformVersion(func() int {
			level, err := adb.APILevel(ctx)
			if err != nil {
				logger.Debug("reading api level failed", "error", err)
				return 0
			}
			return level
		})}
	}

	return nil
}

// newSource opens the configured store and wraps it in a settings.Source.
// The caller closes the returned store.
func newSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*settings.Source, store.Store, error) {
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s provider: %w", cfg.Provider.Kind, err)
	}

	logger.Debug("provider ready", "kind", cfg.Provider.Kind, "path", cfg.Provider.Path)
	return settings.New(s, platformOptions(ctx, cfg, s, logger)...), s, nil
}
