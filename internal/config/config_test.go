package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultClockHz, cfg.ClockHz)
	assert.Equal(t, DefaultTimerHz, cfg.TimerHz)
	assert.Equal(t, "X", cfg.Keymap["0"])
	assert.Equal(t, 10, cfg.TicksPerTimer())
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chippy.yml")
	require.NoError(t, os.WriteFile(path, []byte("quirks:\n  shift_uses_vy: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Quirks.ShiftUsesVY)
	assert.Equal(t, DefaultClockHz, cfg.ClockHz)
	assert.Equal(t, "X", cfg.Keymap["0"])
}

func TestLoadOverridesRates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chippy.yml")
	require.NoError(t, os.WriteFile(path, []byte("clock_hz: 300\ntimer_hz: 60\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.ClockHz)
	assert.Equal(t, 5, cfg.TicksPerTimer())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestQuirksToChip8(t *testing.T) {
	q := Quirks{ShiftUsesVY: true, AddiSetsVF: true}
	c8 := q.ToChip8()
	assert.True(t, c8.ShiftUsesVY)
	assert.True(t, c8.AddiSetsVF)
	assert.False(t, c8.JumpAddsVX)
}
