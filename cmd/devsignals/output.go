// ABOUTME: Output rendering for snapshots and setting listings
// ABOUTME: Text output is a colorized table; json and yaml are for the fingerprint pipeline

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/2389/devsignals/internal/settings"
	"github.com/2389/devsignals/internal/store"
)

// report is one snapshot collection as printed by the snapshot command.
type report struct {
	CollectionID string            `json:"collection_id" yaml:"collection_id"`
	CollectedAt  time.Time         `json:"collected_at" yaml:"collected_at"`
	Provider     string            `json:"provider" yaml:"provider"`
	APILevel     int               `json:"api_level,omitempty" yaml:"api_level,omitempty"`
	Signals      settings.Snapshot `json:"signals" yaml:"signals"`
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case "json":
		return writeJSON(w, r)
	case "yaml":
		return yaml.NewEncoder(w).Encode(r)
	}

	gray := color.New(color.FgHiBlack)
	gray.Fprintf(w, "  collection %s  provider %s  %s\n\n",
		r.CollectionID, r.Provider, r.CollectedAt.Format(time.RFC3339))
	return writeTable(w, r.Signals.Values())
}

func writeValues(w io.Writer, format string, values []settings.NamedValue) error {
	switch format {
	case "json", "yaml":
		m := make(map[string]string, len(values))
		for _, nv := range values {
			m[nv.Name] = nv.Value
		}
		if format == "json" {
			return writeJSON(w, m)
		}
		return yaml.NewEncoder(w).Encode(m)
	}
	return writeTable(w, values)
}

func writeSettings(w io.Writer, format string, list []store.Setting) error {
	type row struct {
		Namespace string `json:"namespace" yaml:"namespace"`
		Key       string `json:"key" yaml:"key"`
		Value     string `json:"value" yaml:"value"`
	}

	rows := make([]row, 0, len(list))
	for _, s := range list {
		rows = append(rows, row{Namespace: string(s.Namespace), Key: string(s.Key), Value: s.Value})
	}

	switch format {
	case "json":
		return writeJSON(w, rows)
	case "yaml":
		return yaml.NewEncoder(w).Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAMESPACE\tKEY\tVALUE")
	fmt.Fprintln(tw, "  ---------\t---\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Namespace, r.Key, r.Value)
	}
	return tw.Flush()
}

// writeTable prints name/value pairs, marking empty values as unavailable.
func writeTable(w io.Writer, values []settings.NamedValue) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, nv := range values {
		value := color.GreenString("%q", nv.Value)
		if nv.Value == "" {
			value = color.HiBlackString("(unavailable)")
		}
		fmt.Fprintf(tw, "  %s\t%s\n", nv.Name, value)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
