package rom

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAcceptsFittingROM(t *testing.T) {
	data := bytes.Repeat([]byte{0x12, 0x34}, 10)
	got, err := Load(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLoadRejectsOversizedROM(t *testing.T) {
	data := make([]byte, MaxSize+1)
	_, err := Load(bytes.NewReader(data))
	assert.Error(t, err)
}

func TestLoadAcceptsExactlyMaxSize(t *testing.T) {
	data := make([]byte, MaxSize)
	_, err := Load(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.ch8")
	want := []byte{0x00, 0xE0, 0x12, 0x00}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
}
