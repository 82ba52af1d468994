// Package fixture loads a decoder dictionary from a local YAML file, for
// tests and the demo CLI. It is not a cloud-manifest provisioning system:
// it has no network access, no caching, and no retry logic — a pure
// function of file content to *obd.Dictionary.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/obdtelemetry/j1979decoder/obd"
)

// entry mirrors obd.DictionaryEntry with a PID field added, since the
// dictionary itself is keyed by PID in a map but the fixture format is a
// flat list (easier to hand-write and diff in a YAML file).
type entry struct {
	PID         int                 `yaml:"pid"`
	SizeInBytes int                 `yaml:"size_in_bytes"`
	Signals     []obd.SignalFormula `yaml:"signals"`
}

type document struct {
	PIDs []entry `yaml:"pids"`
}

// LoadDictionary reads path and builds an *obd.Dictionary from it.
func LoadDictionary(path string) (*obd.Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: reading %s: %w", path, err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}

	entries := make(map[obd.PID]obd.DictionaryEntry, len(doc.PIDs))
	for _, e := range doc.PIDs {
		if e.PID < 0 || e.PID > 0xFF {
			return nil, fmt.Errorf("fixture: %s: pid %d out of byte range", path, e.PID)
		}
		entries[obd.PID(e.PID)] = obd.DictionaryEntry{
			SizeInBytes: e.SizeInBytes,
			Signals:     e.Signals,
		}
	}

	return obd.NewDictionary(entries), nil
}
