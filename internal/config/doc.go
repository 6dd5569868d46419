// Package config handles configuration loading for devsignals.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from DEVSIGNALS_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/devsignals/config.yaml
//  3. ~/.config/devsignals/config.yaml
//
// When no file exists the CLI runs with Default(), reading from a device over adb.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	provider:
//	  serial: "${ANDROID_SERIAL}"
//
// # Configuration Sections
//
// Provider:
//
//	provider:
//	  kind: "sqlite"                 # sqlite, file, adb
//	  driver: "sqlite"               # sqlite (pure Go) or sqlite3 (cgo)
//	  path: "/data/settings.db"      # database or .yaml/.toml dump
//	  adb_path: "adb"
//	  serial: "emulator-5554"
//
// Platform:
//
//	platform:
//	  api_level: 29                  # 0 = ask the device, or assume current
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// Output:
//
//	output:
//	  format: "text"  # text, json, yaml
package config
