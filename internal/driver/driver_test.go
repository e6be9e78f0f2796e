package driver

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chippy8vm/chippy/internal/chip8"
	"github.com/chippy8vm/chippy/internal/config"
	"github.com/chippy8vm/chippy/internal/display"
)

func silentVM() *chip8.VM {
	return chip8.New(slog.New(slog.NewTextHandler(io.Discard, nil)), chip8.Quirks{})
}

func TestRunTimerPeriodTicksAndRenders(t *testing.T) {
	vm := silentVM()
	require.NoError(t, vm.LoadROM([]byte{0x00, 0xE0})) // CLS; the zeroed words after it are unknown opcodes, logged and skipped
	host := display.NewHeadless()

	require.NoError(t, RunTimerPeriod(vm, host, 5))
	assert.Equal(t, 1, host.FrameCount())
	assert.Len(t, host.Beeps(), 1)
}

func TestRunTimerPeriodStampsKeysBeforeTicking(t *testing.T) {
	vm := silentVM()
	require.NoError(t, vm.LoadROM([]byte{
		0xF0, 0x0A, // FX0A: wait for key into V0
		0xF0, 0x29, // FONT V0
		0xD1, 0x15, // DRW V1,V1,5: glyph at (0,0)
	}))
	host := display.NewHeadless()
	host.PressKey(0x9)

	// The key is stamped before the first tick, so the WAITKEY completes
	// at once and the glyph for 9 is drawn within the same period.
	require.NoError(t, RunTimerPeriod(vm, host, 3))
	assert.NotEqual(t, [chip8.ScreenSize]byte{}, host.LastFrame())

	// A second period with the key still pressed runs on without stalling.
	require.NoError(t, RunTimerPeriod(vm, host, 1))
	assert.Equal(t, 2, host.FrameCount())
}

func TestRunTimerPeriodMatchesDirectDriving(t *testing.T) {
	rom := []byte{
		0x60, 0x05, // MOV V0, 5
		0xA3, 0x00, // MVI 0x300
		0xD0, 0x11, // DRW V0,V1,1
	}

	viaDriver := silentVM()
	require.NoError(t, viaDriver.LoadROM(rom))
	host := display.NewHeadless()
	require.NoError(t, RunTimerPeriod(viaDriver, host, 3))

	direct := silentVM()
	require.NoError(t, direct.LoadROM(rom))
	for i := 0; i < 3; i++ {
		require.NoError(t, direct.Tick())
	}
	direct.TickTimers()

	assert.Equal(t, direct.Screen(), host.LastFrame())
}

func TestConfigTicksPerTimerDrivesCadence(t *testing.T) {
	cfg := config.Default()
	cfg.ClockHz = 120
	cfg.TimerHz = 60
	assert.Equal(t, 2, cfg.TicksPerTimer())
}
