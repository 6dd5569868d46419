// ABOUTME: Tests for the devsignals CLI wiring
// ABOUTME: Covers config overrides, provider selection, version gating, and output rendering

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/devsignals/internal/config"
	"github.com/2389/devsignals/internal/settings"
	"github.com/2389/devsignals/internal/store"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	opts := &options{
		configPath: filepath.Join(t.TempDir(), "absent.yaml"),
		provider:   "file",
		path:       "/tmp/settings.yaml",
		apiLevel:   27,
		format:     "json",
	}

	cfg, err := loadConfig(opts)
	require.NoError(t, err)
	assert.Equal(t, config.ProviderFile, cfg.Provider.Kind)
	assert.Equal(t, "/tmp/settings.yaml", cfg.Provider.Path)
	assert.Equal(t, 27, cfg.Platform.APILevel)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
provider:
  kind: sqlite
  path: /var/lib/devsignals/settings.db
output:
  format: yaml
`), 0644))

	cfg, err := loadConfig(&options{configPath: configPath, format: "text"})
	require.NoError(t, err)
	assert.Equal(t, config.ProviderSQLite, cfg.Provider.Kind)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadConfig_PathFlagCompletesFileConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("provider:\n  kind: sqlite\n"), 0644))

	cfg, err := loadConfig(&options{configPath: configPath, path: "/tmp/x.db"})
	require.NoError(t, err)
	assert.Equal(t, config.ProviderSQLite, cfg.Provider.Kind)
	assert.Equal(t, "/tmp/x.db", cfg.Provider.Path)
}

func TestLoadConfig_StillValidatesAfterOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("provider:\n  kind: sqlite\n"), 0644))

	_, err := loadConfig(&options{configPath: configPath})
	assert.ErrorContains(t, err, "provider.path is required for the sqlite provider")
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	_, err := loadConfig(&options{
		configPath: filepath.Join(t.TempDir(), "absent.yaml"),
		provider:   "registry",
	})
	assert.ErrorContains(t, err, "provider.kind")
}

func TestNewSource_FileProviderWithVersionGate(t *testing.T) {
	dumpPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(dumpPath, []byte(`
secure:
  rtt_calling_mode: "1"
  accessibility_enabled: "1"
`), 0644))

	cfg := config.Default()
	cfg.Provider.Kind = config.ProviderFile
	cfg.Provider.Path = dumpPath
	cfg.Platform.APILevel = 27

	src, s, err := newSource(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "", src.RTTCallingMode())
	assert.Equal(t, "1", src.AccessibilityEnabled())
}

func TestNewSource_SQLiteProvider(t *testing.T) {
	cfg := config.Default()
	cfg.Provider.Kind = config.ProviderSQLite
	cfg.Provider.Path = filepath.Join(t.TempDir(), "settings.db")

	src, s, err := newSource(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(context.Background(), settings.Global, settings.KeyADBEnabled, "1"))
	assert.Equal(t, "1", src.ADBEnabled())
	assert.Equal(t, "", src.HTTPProxy())
}

func TestNewSource_MissingDumpFails(t *testing.T) {
	cfg := config.Default()
	cfg.Provider.Kind = config.ProviderFile
	cfg.Provider.Path = filepath.Join(t.TempDir(), "missing.toml")

	_, _, err := newSource(context.Background(), cfg, slog.Default())
	assert.ErrorContains(t, err, "opening file provider")
}

func TestPlatformOptions_ADBReadsDeviceLevel(t *testing.T) {
	calls := 0
	adb := store.NewADBStore("adb", store.WithRunner(func(_ context.Context, _ string, args ...string) ([]byte, error) {
		if args[len(args)-1] == "ro.build.version.sdk" {
			calls++
			return []byte("26\n"), nil
		}
		return []byte("1\n"), nil
	}))

	src := settings.New(adb, platformOptions(context.Background(), config.Default(), adb, slog.Default())...)

	assert.Equal(t, "", src.RTTCallingMode())
	assert.Equal(t, "1", src.ADBEnabled())
	assert.Equal(t, 1, calls)
}

func TestPlatformOptions_NoGateWithoutVersion(t *testing.T) {
	assert.Empty(t, platformOptions(context.Background(), config.Default(), store.NewMemoryStore(), slog.Default()))
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := report{
		CollectionID: "c0ffee",
		CollectedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Provider:     "file",
		Signals:      settings.Snapshot{ADBEnabled: "1"},
	}

	require.NoError(t, writeReport(&buf, "json", r))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "c0ffee", decoded["collection_id"])
	assert.NotContains(t, decoded, "api_level")

	signals, ok := decoded["signals"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1", signals["adb_enabled"])
	assert.Equal(t, "", signals["rtt_calling_mode"])
	assert.Len(t, signals, 18)
}

func TestWriteTable_MarksUnavailable(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []settings.NamedValue{
		{Name: "adb_enabled", Value: "1"},
		{Name: "http_proxy", Value: ""},
	}))

	assert.Contains(t, buf.String(), `adb_enabled  "1"`)
	assert.Contains(t, buf.String(), "http_proxy   (unavailable)")
}

func TestColorHandler_WritesAttrs(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	logger := slog.New(&colorHandler{out: &buf, mu: new(sync.Mutex), level: slog.LevelInfo}).
		With("component", "store")

	logger.Debug("hidden")
	logger.Info("opened", "path", "settings.db")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INF opened")
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "path=settings.db")
}
