package display

import "github.com/chippy8vm/chippy/internal/chip8"

// Headless is a Host with no window or audio device: it records frames
// in memory instead of drawing them. It backs the `chippy validate`
// subcommand and the test suite, where no display server is available.
type Headless struct {
	keys   [chip8.NumKeys]bool
	closed bool
	frames [][chip8.ScreenSize]byte
	beeps  []bool
}

// NewHeadless returns a Headless host with no keys pressed.
func NewHeadless() *Headless {
	return &Headless{}
}

// PollInput returns the scripted key state set via PressKey/ReleaseKey.
func (h *Headless) PollInput() [chip8.NumKeys]bool {
	return h.keys
}

// PressKey marks a hex key pressed for the next PollInput call.
func (h *Headless) PressKey(code byte) {
	if int(code) < chip8.NumKeys {
		h.keys[code] = true
	}
}

// ReleaseKey marks a hex key released.
func (h *Headless) ReleaseKey(code byte) {
	if int(code) < chip8.NumKeys {
		h.keys[code] = false
	}
}

// Close marks the session as ended; Closed reports true afterward.
func (h *Headless) Close() { h.closed = true }

// Closed reports whether Close has been called.
func (h *Headless) Closed() bool { return h.closed }

// Render records the frame. LastFrame retrieves the most recent one.
func (h *Headless) Render(screen [chip8.ScreenSize]byte) {
	h.frames = append(h.frames, screen)
}

// Beep records the buzzer state. Beeps retrieves the full history.
func (h *Headless) Beep(on bool) {
	h.beeps = append(h.beeps, on)
}

// LastFrame returns the most recently rendered frame, or the zero frame
// if Render has never been called.
func (h *Headless) LastFrame() [chip8.ScreenSize]byte {
	if len(h.frames) == 0 {
		return [chip8.ScreenSize]byte{}
	}
	return h.frames[len(h.frames)-1]
}

// FrameCount reports how many frames have been rendered.
func (h *Headless) FrameCount() int { return len(h.frames) }

// Beeps returns the recorded buzzer history, oldest first.
func (h *Headless) Beeps() []bool { return h.beeps }
