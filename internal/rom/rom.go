// Package rom is the CHIP-8 Loader: it turns a ROM file or stream into
// the immutable byte sequence the core copies into memory at 0x200. It
// knows nothing about opcodes or VM state.
package rom

import (
	"fmt"
	"io"
	"os"
)

// MaxSize is the largest ROM that fits in the address space between
// 0x200 and the end of memory (0x1000).
const MaxSize = 0x1000 - 0x200

// Load reads all of r and returns its bytes, rejecting anything larger
// than MaxSize. Unlike the teacher's loadROM, which panics on an
// oversized file, this returns an error: a malformed or hostile ROM is
// not a programming error and should never crash the Loader.
func Load(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("rom: read: %w", err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("rom: too large: %d bytes (max %d)", len(data), MaxSize)
	}
	return data, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rom: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
