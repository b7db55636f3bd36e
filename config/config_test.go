package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "horde.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func newFlagSet() *flag.FlagSet {
	fset := flag.NewFlagSet("horde", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	return fset
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10.0, cfg.Gore.GibLifetime)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
game:
  seed: 42
logging:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level, "untouched keys keep defaults")
	assert.Equal(t, 0.8, cfg.Audio.Volume)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "audio:\n  volume: 3\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "logging:\n  format: xml\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "game: [1, 2"))
	assert.ErrorContains(t, err, "parse")
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "game:\n  seed: 5\n  debug: true\nlogging:\n  level: warn\n")

	cfg, err := FromFlags(newFlagSet(), []string{"-config", path, "-seed", "9", "-log-level", "debug", "-mute"})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Game.Seed)
	assert.True(t, cfg.Game.Debug, "unset flags leave the file value")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Audio.Enabled)
}

func TestFlagsRejectUnknown(t *testing.T) {
	_, err := FromFlags(newFlagSet(), []string{"-level", "x"})
	assert.Error(t, err)
}
