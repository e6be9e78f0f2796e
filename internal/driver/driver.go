// Package driver wires the core, a Host, and a config together into the
// per-frame loop spec.md §2/§5 describes: stamp input, tick the CPU N
// times, tick the timers once, render. It unifies the teacher's two
// divergent loops (main.go's ticker loop and chip8.VM.Run()'s select
// loop over channels) into a single Host-driven implementation.
package driver

import (
	"time"

	"github.com/chippy8vm/chippy/internal/chip8"
	"github.com/chippy8vm/chippy/internal/config"
	"github.com/chippy8vm/chippy/internal/display"
)

// VM is the subset of *chip8.VM the driver depends on, kept narrow so
// tests can exercise Loop against the real core without a window.
type VM interface {
	Tick() error
	TickTimers() bool
	Screen() [chip8.ScreenSize]byte
	SetKey(code byte, pressed bool)
}

// Loop runs the fetch/decode/execute + timer + render cycle until the
// Host reports closed. Once per timer period it stamps current key state
// into the VM, then calls Tick cfg.TicksPerTimer() times, and
// renders and drives the buzzer once per timer period — the Host
// contract from spec.md §5.
func Loop(vm VM, host display.Host, cfg *config.Config) error {
	ticksPerTimer := cfg.TicksPerTimer()
	if ticksPerTimer < 1 {
		ticksPerTimer = 1
	}
	period := time.Second / time.Duration(cfg.TimerHz)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for range ticker.C {
		if host.Closed() {
			return nil
		}
		if err := RunTimerPeriod(vm, host, ticksPerTimer); err != nil {
			return err
		}
	}
	return nil
}

// RunTimerPeriod executes exactly one timer period: stamping input and
// ticking the CPU `ticksPerTimer` times, then ticking the timers once
// and rendering. Exported separately from Loop so tests (and the
// `chippy validate` CLI subcommand) can drive deterministic periods
// without a real-time ticker.
func RunTimerPeriod(vm VM, host display.Host, ticksPerTimer int) error {
	keys := host.PollInput()
	for code, pressed := range keys {
		vm.SetKey(byte(code), pressed)
	}

	for i := 0; i < ticksPerTimer; i++ {
		if err := vm.Tick(); err != nil {
			return err
		}
	}

	beep := vm.TickTimers()
	host.Render(vm.Screen())
	host.Beep(beep)
	return nil
}
