// Package display is the CHIP-8 Host: the window that renders the
// framebuffer, the keyboard that feeds the keypad, and the buzzer that
// sounds while the sound timer is nonzero. The core in internal/chip8
// never imports this package — it only depends on the Host interface
// through internal/driver.
package display

import "github.com/chippy8vm/chippy/internal/chip8"

// Host is everything the driver loop needs from whatever is presenting
// the emulator to a person: current key state, whether the session
// should end, a way to present a frame, and a way to drive the buzzer.
// spec.md §1 scopes all of this OUT of the core as an abstract
// collaborator; this interface is that abstraction made concrete.
type Host interface {
	// PollInput returns the current pressed state of all 16 hex keys,
	// refreshed once per driver frame.
	PollInput() [chip8.NumKeys]bool
	// Closed reports whether the user has asked to end the session.
	Closed() bool
	// Render presents one framebuffer snapshot.
	Render(screen [chip8.ScreenSize]byte)
	// Beep turns the buzzer on or off.
	Beep(on bool)
}
