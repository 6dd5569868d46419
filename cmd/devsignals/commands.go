// ABOUTME: CLI subcommands for reading, listing and writing settings
// ABOUTME: Each command loads config, opens the provider, and prints in the configured format

package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/2389/devsignals/internal/config"
	"github.com/2389/devsignals/internal/settings"
	"github.com/2389/devsignals/internal/store"
)

func runSnapshot(ctx context.Context, args []string) error {
	fset, opts := newFlagSet("snapshot")
	if err := fset.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Logging)

	src, s, err := newSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	r := report{
		CollectionID: uuid.NewString(),
		CollectedAt:  time.Now().UTC(),
		Provider:     cfg.Provider.Kind,
		APILevel:     cfg.Platform.APILevel,
		Signals:      settings.Collect(src),
	}
	logger.Info("snapshot collected", "collection_id", r.CollectionID, "provider", r.Provider)

	return writeReport(os.Stdout, cfg.Output.Format, r)
}

func runGet(ctx context.Context, args []string) error {
	fset, opts := newFlagSet("get")
	if err := fset.Parse(args); err != nil {
		return err
	}
	names := fset.Args()
	if len(names) == 0 {
		return fmt.Errorf("usage: devsignals get <signal>...")
	}

	// Reject unknown names before touching the provider
	for _, name := range names {
		if _, ok := settings.Lookup(name); !ok {
			return fmt.Errorf("unknown signal %q (see: devsignals signals)", name)
		}
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Logging)

	src, s, err := newSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	values := make([]settings.NamedValue, 0, len(names))
	for _, name := range names {
		v, _ := settings.Get(src, name)
		values = append(values, settings.NamedValue{Name: name, Value: v})
	}

	return writeValues(os.Stdout, cfg.Output.Format, values)
}

func runSignals() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  SIGNAL\tNAMESPACE\tKEY\tMIN API")
	fmt.Fprintln(w, "  ------\t---------\t---\t-------")

	for _, sig := range settings.Signals() {
		minAPI := "-"
		if sig.MinAPILevel > 0 {
			minAPI = fmt.Sprintf("%d", sig.MinAPILevel)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", sig.Name, sig.Namespace, sig.Key, minAPI)
	}
	return w.Flush()
}

func runPut(ctx context.Context, args []string) error {
	fset, opts := newFlagSet("put")
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() != 3 {
		return fmt.Errorf("usage: devsignals put <namespace> <key> <value>")
	}

	ns, err := settings.ParseNamespace(fset.Arg(0))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if cfg.Provider.Kind == config.ProviderFile {
		return fmt.Errorf("the file provider is read-only")
	}
	logger := setupLogger(cfg.Logging)

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening %s provider: %w", cfg.Provider.Kind, err)
	}
	defer s.Close()

	key := settings.Key(fset.Arg(1))
	if err := s.Put(ctx, ns, key, fset.Arg(2)); err != nil {
		return err
	}

	logger.Info("setting written", "namespace", ns, "key", key)
	return nil
}

func runDump(ctx context.Context, args []string) error {
	fset, opts := newFlagSet("dump")
	if err := fset.Parse(args); err != nil {
		return err
	}

	namespaces := settings.Namespaces()
	if fset.NArg() > 0 {
		ns, err := settings.ParseNamespace(fset.Arg(0))
		if err != nil {
			return err
		}
		namespaces = []settings.Namespace{ns}
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	setupLogger(cfg.Logging)

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening %s provider: %w", cfg.Provider.Kind, err)
	}
	defer s.Close()

	var all []store.Setting
	for _, ns := range namespaces {
		list, err := s.List(ctx, ns)
		if err != nil {
			return fmt.Errorf("listing %s: %w", ns, err)
		}
		all = append(all, list...)
	}

	return writeSettings(os.Stdout, cfg.Output.Format, all)
}
