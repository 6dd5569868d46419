// ABOUTME: Loads a settings dump from a YAML or TOML file into a MemoryStore
// ABOUTME: Dumps are keyed by namespace, then by setting name

package store

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/2389/devsignals/internal/settings"
)

// LoadFile reads a settings dump such as
//
//	global:
//	  adb_enabled: "1"
//	system:
//	  font_scale: "1.0"
//
// The format is chosen by extension: .yaml/.yml or .toml. Both formats share
// one conversion: strings are kept verbatim, booleans become "1"/"0",
// integers are written in decimal and floats always keep a decimal point.
// A YAML null marks a key as present but unset and is skipped, matching a
// NULL row in settings.db.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var raw map[string]map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing settings file: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("parsing settings file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings file extension %q", ext)
	}

	m := NewMemoryStore()
	for name, values := range raw {
		ns, err := settings.ParseNamespace(name)
		if err != nil {
			return nil, fmt.Errorf("settings file: %w", err)
		}
		for key, v := range values {
			if v == nil {
				continue
			}
			value, err := settingValue(v)
			if err != nil {
				return nil, fmt.Errorf("settings file: %s.%s: %w", name, key, err)
			}
			if err := m.Put(context.Background(), ns, settings.Key(key), value); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// settingValue renders a decoded scalar as the string the settings provider
// would hold.
func settingValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		// Boolean settings are stored as "1"/"0"
		if v {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !math.IsNaN(v) && !math.IsInf(v, 0) && !strings.Contains(s, ".") {
			s += ".0"
		}
		return s, nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
