package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obdtelemetry/j1979decoder/obd"
)

const sample = `
pids:
  - pid: 12
    size_in_bytes: 2
    signals:
      - signal_id: RPM
        first_bit_position: 0
        size_in_bits: 16
        factor: 0.25
        offset: 0
  - pid: 13
    size_in_bytes: 1
    signals:
      - signal_id: speed
        first_bit_position: 0
        size_in_bits: 8
        factor: 1
        offset: 0
`

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDictionary(t *testing.T) {
	path := writeFixture(t, sample)

	dict, err := LoadDictionary(path)
	require.NoError(t, err)

	entry, ok := dict.Lookup(obd.PID(12))
	require.True(t, ok)
	assert.Equal(t, 2, entry.SizeInBytes)
	require.Len(t, entry.Signals, 1)
	assert.Equal(t, "RPM", entry.Signals[0].SignalID)
	assert.Equal(t, 0.25, entry.Signals[0].Factor)

	assert.True(t, dict.Contains(obd.PID(13)))
}

func TestLoadDictionary_MissingFile(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDictionary_PIDOutOfRange(t *testing.T) {
	path := writeFixture(t, "pids:\n  - pid: 999\n    size_in_bytes: 1\n")
	_, err := LoadDictionary(path)
	assert.Error(t, err)
}

func TestLoadDictionary_MalformedYAML(t *testing.T) {
	path := writeFixture(t, "pids: [this is not valid: yaml: :::")
	_, err := LoadDictionary(path)
	assert.Error(t, err)
}
