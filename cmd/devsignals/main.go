// ABOUTME: Entry point for the devsignals CLI
// ABOUTME: Collects device settings signals from a settings.db, a dump file, or a device over adb

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/2389/devsignals/internal/config"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
     _                _                   _
  __| | _____   _____(_) __ _ _ __   __ _| |___
 / _' |/ _ \ \ / / __| |/ _' | '_ \ / _' | / __|
| (_| |  __/\ V /\__ \ | (_| | | | | (_| | \__ \
 \__,_|\___| \_/ |___/_|\__, |_| |_|\__,_|_|___/
                        |___/
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "snapshot":
		err = runSnapshot(ctx, args)
	case "get":
		err = runGet(ctx, args)
	case "signals":
		err = runSignals()
	case "put":
		err = runPut(ctx, args)
	case "dump":
		err = runDump(ctx, args)
	case "version":
		fmt.Println(version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: devsignals <command> [flags] [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  snapshot                     Read every signal and print the snapshot")
	fmt.Println("  get <signal>...              Read the named signals")
	fmt.Println("  signals                      List tracked signals with namespace and key")
	fmt.Println("  put <ns> <key> <value>       Write a raw setting (sqlite, adb)")
	fmt.Println("  dump [ns]                    List raw settings held by the provider")
	fmt.Println("  version                      Print the version")
	fmt.Println()
	yellow.Println("Flags:")
	fmt.Println("  -config PATH                 Config file")
	fmt.Println("  -provider KIND               sqlite, file or adb")
	fmt.Println("  -path PATH                   settings.db or .yaml/.toml dump")
	fmt.Println("  -serial SERIAL               adb device serial")
	fmt.Println("  -api-level N                 Platform API level override")
	fmt.Println("  -format FORMAT               text, json or yaml")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  DEVSIGNALS_CONFIG            Config file path (default: ~/.config/devsignals/config.yaml)")
	fmt.Println()
}

// options are the flags shared by every provider-backed command.
type options struct {
	configPath string
	provider   string
	path       string
	serial     string
	apiLevel   int
	format     string
}

func newFlagSet(name string) (*flag.FlagSet, *options) {
	opts := &options{}
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.StringVar(&opts.configPath, "config", config.Path(), "config file")
	fset.StringVar(&opts.provider, "provider", "", "provider kind: sqlite, file or adb")
	fset.StringVar(&opts.path, "path", "", "settings database or dump file")
	fset.StringVar(&opts.serial, "serial", "", "adb device serial")
	fset.IntVar(&opts.apiLevel, "api-level", 0, "platform API level override")
	fset.StringVar(&opts.format, "format", "", "output format: text, json or yaml")
	return fset, opts
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist, applies flag overrides, then validates the result.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Parse(opts.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.provider != "" {
		cfg.Provider.Kind = opts.provider
	}
	if opts.path != "" {
		cfg.Provider.Path = opts.path
	}
	if opts.serial != "" {
		cfg.Provider.Serial = opts.serial
	}
	if opts.apiLevel != 0 {
		cfg.Platform.APILevel = opts.apiLevel
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
