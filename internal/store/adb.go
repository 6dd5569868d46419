// ABOUTME: Store backed by a live device through the adb "settings" shell command
// ABOUTME: Also reads the device API level for version-gated signals

package store

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/2389/devsignals/internal/settings"
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ADBStore reads and writes settings on a device over adb.
type ADBStore struct {
	adbPath string
	serial  string
	run     Runner
	logger  *slog.Logger
}

var _ Store = (*ADBStore)(nil)

// ADBOption configures an ADBStore.
type ADBOption func(*ADBStore)

// WithSerial targets a specific device when several are attached.
func WithSerial(serial string) ADBOption {
	return func(a *ADBStore) { a.serial = serial }
}

// WithRunner replaces the command runner.
func WithRunner(run Runner) ADBOption {
	return func(a *ADBStore) { a.run = run }
}

// NewADBStore creates a store that invokes the adb binary at adbPath
// ("adb" if empty).
func NewADBStore(adbPath string, opts ...ADBOption) *ADBStore {
	if adbPath == "" {
		adbPath = "adb"
	}
	a := &ADBStore{
		adbPath: adbPath,
		run:     execRunner,
		logger:  slog.Default().With("component", "adb"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// shell runs an adb shell command on the target device.
func (a *ADBStore) shell(ctx context.Context, args ...string) (string, error) {
	full := make([]string, 0, len(args)+3)
	if a.serial != "" {
		full = append(full, "-s", a.serial)
	}
	full = append(full, "shell")
	full = append(full, args...)

	a.logger.Debug("running adb", "args", full)

	out, err := a.run(ctx, a.adbPath, full...)
	if err != nil {
		return "", fmt.Errorf("adb %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}

// GetString runs "settings get". The literal output "null" means the key is unset.
func (a *ADBStore) GetString(ns settings.Namespace, key settings.Key) (string, error) {
	if err := checkNamespace(ns); err != nil {
		return "", err
	}

	out, err := a.shell(context.Background(), "settings", "get", string(ns), string(key))
	if err != nil {
		return "", err
	}
	if out == "null" {
		return "", ErrNotFound
	}
	return out, nil
}

// Put runs "settings put".
func (a *ADBStore) Put(ctx context.Context, ns settings.Namespace, key settings.Key, value string) error {
	if err := checkNamespace(ns); err != nil {
		return err
	}
	_, err := a.shell(ctx, "settings", "put", string(ns), string(key), value)
	return err
}

// Delete runs "settings delete".
func (a *ADBStore) Delete(ctx context.Context, ns settings.Namespace, key settings.Key) error {
	if err := checkNamespace(ns); err != nil {
		return err
	}
	_, err := a.shell(ctx, "settings", "delete", string(ns), string(key))
	return err
}

// List runs "settings list" and parses its name=value lines.
func (a *ADBStore) List(ctx context.Context, ns settings.Namespace) ([]Setting, error) {
	if err := checkNamespace(ns); err != nil {
		return nil, err
	}

	out, err := a.shell(ctx, "settings", "list", string(ns))
	if err != nil {
		return nil, err
	}

	var list []Setting
	scanner := bufio.NewScanner(bytes.NewBufferString(out))
	for scanner.Scan() {
		name, value, ok := strings.Cut(strings.TrimRight(scanner.Text(), "\r"), "=")
		if !ok || name == "" || value == "null" {
			continue
		}
		list = append(list, Setting{Namespace: ns, Key: settings.Key(name), Value: value})
	}
	return list, scanner.Err()
}

// APILevel reads ro.build.version.sdk from the device.
func (a *ADBStore) APILevel(ctx context.Context) (int, error) {
	out, err := a.shell(ctx, "getprop", "ro.build.version.sdk")
	if err != nil {
		return 0, err
	}
	level, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("parsing api level %q: %w", out, err)
	}
	return level, nil
}

// Close is a no-op; every call is a separate adb invocation.
func (a *ADBStore) Close() error {
	return nil
}
