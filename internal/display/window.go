package display

import (
	"bytes"
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/chippy8vm/chippy/internal/chip8"
)

const (
	winCols           float64 = chip8.ScreenWidth
	winRows           float64 = chip8.ScreenHeight
	defaultWindowW    float64 = 1024
	defaultWindowH    float64 = 768
	beepSampleRate            = 44100
	beepLoopFadeFrame         = beepSampleRate / 10
)

// keyByName maps the physical key names used in config.Config.Keymap to
// pixelgl buttons. Grounded on the teacher's inline pixelgl.KeyX literals
// in internal/pixel/pixel.go, generalized into a name table so the
// keymap can come from config instead of being hard-coded.
var keyByName = func() map[string]pixelgl.Button {
	m := map[string]pixelgl.Button{
		"0": pixelgl.Key0, "1": pixelgl.Key1, "2": pixelgl.Key2, "3": pixelgl.Key3,
		"4": pixelgl.Key4, "5": pixelgl.Key5, "6": pixelgl.Key6, "7": pixelgl.Key7,
		"8": pixelgl.Key8, "9": pixelgl.Key9,
	}
	letters := []pixelgl.Button{
		pixelgl.KeyA, pixelgl.KeyB, pixelgl.KeyC, pixelgl.KeyD, pixelgl.KeyE, pixelgl.KeyF,
		pixelgl.KeyG, pixelgl.KeyH, pixelgl.KeyI, pixelgl.KeyJ, pixelgl.KeyK, pixelgl.KeyL,
		pixelgl.KeyM, pixelgl.KeyN, pixelgl.KeyO, pixelgl.KeyP, pixelgl.KeyQ, pixelgl.KeyR,
		pixelgl.KeyS, pixelgl.KeyT, pixelgl.KeyU, pixelgl.KeyV, pixelgl.KeyW, pixelgl.KeyX,
		pixelgl.KeyY, pixelgl.KeyZ,
	}
	for i, b := range letters {
		m[string(rune('A'+i))] = b
	}
	return m
}()

// Window is the production Host: a pixelgl window driving the
// framebuffer, an hex-keypad built from a configurable name->button
// mapping, and a beep-backed buzzer looping an embedded tone.
type Window struct {
	*pixelgl.Window
	keymap map[byte]pixelgl.Button

	tone       beep.Buffer
	toneFormat beep.Format
	ctrl       *beep.Ctrl
	muted      bool
}

// NewWindow opens a pixelgl window sized for a 64x32 framebuffer and
// wires up the buzzer. keymap maps hex digits to physical key names as
// found in config.Config.Keymap; entries whose digit or key name is not
// recognised are skipped, leaving that hex key unmapped (there is no
// fallback to the default layout).
func NewWindow(keymap map[string]string, mute bool) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chippy",
		Bounds: pixel.R(0, 0, defaultWindowW, defaultWindowH),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("display: new window: %v", err)
	}

	resolved := make(map[byte]pixelgl.Button, len(keymap))
	for digit, name := range keymap {
		code, err := parseHexDigit(digit)
		if err != nil {
			continue
		}
		btn, ok := keyByName[name]
		if !ok {
			continue
		}
		resolved[code] = btn
	}

	win := &Window{Window: w, keymap: resolved, muted: mute}
	if !mute {
		if err := win.initAudio(); err != nil {
			return nil, err
		}
	}
	return win, nil
}

func parseHexDigit(s string) (byte, error) {
	var v byte
	_, err := fmt.Sscanf(s, "%X", &v)
	return v, err
}

func (w *Window) initAudio() error {
	streamer, format, err := wav.Decode(bytes.NewReader(embeddedToneWAV))
	if err != nil {
		return fmt.Errorf("display: decode tone: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	w.tone = *buf
	w.toneFormat = format

	return speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
}

// PollInput reads the live pressed state of every mapped hex key.
func (w *Window) PollInput() [chip8.NumKeys]bool {
	var keys [chip8.NumKeys]bool
	for code, btn := range w.keymap {
		keys[code] = w.Window.Pressed(btn)
	}
	return keys
}

// Closed reports whether the window has been asked to close.
func (w *Window) Closed() bool {
	closed := w.Window.Closed()
	if !closed {
		w.Window.UpdateInput()
	}
	return closed
}

// Render clears the window and draws every lit pixel as a scaled
// rectangle, flipping the row order so screen row 0 is drawn at the top
// — adapted from the teacher's DrawGraphics.
func (w *Window) Render(screen [chip8.ScreenSize]byte) {
	w.Window.Clear(colornames.Black)
	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)
	cellW, cellH := defaultWindowW/winCols, defaultWindowH/winRows

	for row := 0; row < chip8.ScreenHeight; row++ {
		for col := 0; col < chip8.ScreenWidth; col++ {
			if screen[row*chip8.ScreenWidth+col] == 0 {
				continue
			}
			x, y := float64(col), float64(chip8.ScreenHeight-1-row)
			draw.Push(pixel.V(cellW*x, cellH*y))
			draw.Push(pixel.V(cellW*x+cellW, cellH*y+cellH))
			draw.Rectangle(0)
		}
	}
	draw.Draw(w.Window)
	w.Window.Update()
}

// Beep starts or stops the looping tone. A no-op when the window was
// constructed with mute=true.
func (w *Window) Beep(on bool) {
	if w.muted {
		return
	}
	if !on {
		speaker.Lock()
		if w.ctrl != nil {
			w.ctrl.Paused = true
		}
		speaker.Unlock()
		return
	}
	speaker.Lock()
	if w.ctrl == nil {
		w.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, w.tone.Streamer(0, w.tone.Len()))}
		speaker.Unlock()
		speaker.Play(w.ctrl)
		return
	}
	w.ctrl.Paused = false
	speaker.Unlock()
}
