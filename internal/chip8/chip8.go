// Package chip8 implements the core of a CHIP-8 virtual machine: the
// fetch/decode/execute engine and the state it mutates. It knows nothing
// about windows, audio, or files — those are the Host and Loader's job
// (see internal/display and internal/rom).
package chip8

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

//		System memory map
// 		+---------------+= 0xFFF (4095) End Chip-8 RAM
// 		| 0x200 to 0xFFF|
// 		|     Chip-8    |
// 		| Program / Data|
// 		|     Space     |
// 		+---------------+= 0x200 (512) Start of most Chip-8 programs
// 		| 0x050 to 0x09F|
// 		|    Fontset    |
// 		+---------------+= 0x050 (80)
// 		| 0x000 to 0x04F|
// 		|   Reserved    |
// 		+---------------+= 0x000 (0) Begin Chip-8 RAM

const (
	// MemorySize is the total addressable memory in bytes.
	MemorySize = 4096
	// NumRegisters is the number of general purpose V registers.
	NumRegisters = 16
	// StackDepth bounds the return-address stack. spec.md leaves this
	// unbounded; 16 matches the teacher's original array-backed stack.
	StackDepth = 16
	// ScreenWidth is the framebuffer width in pixels.
	ScreenWidth = 64
	// ScreenHeight is the framebuffer height in pixels.
	ScreenHeight = 32
	// ScreenSize is the total number of framebuffer cells.
	ScreenSize = ScreenWidth * ScreenHeight
	// NumKeys is the size of the hex keypad.
	NumKeys = 16
	// ProgramStart is the memory address ROMs are loaded at.
	ProgramStart = 0x200
	// FontsetAddr is the memory address the built-in hex font is loaded at.
	FontsetAddr = 0x050
	// TimerFrequency is the rate, in Hz, delay and sound decrement at.
	TimerFrequency = 60
	// maxROMSize is the largest ROM that fits between ProgramStart and the
	// end of memory.
	maxROMSize = MemorySize - ProgramStart
)

// Fontset is the built-in 4x5 hex digit font (0-F), five bytes per glyph,
// loaded at FontsetAddr on every fresh VM.
var Fontset = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Quirks selects between the spec-normative (default, all false) opcode
// semantics and historically-documented alternates some ROMs assume. See
// SPEC_FULL.md §3 and the Open Question resolutions in DESIGN.md.
type Quirks struct {
	// ShiftUsesVY makes SHR/SHL read V[Y] instead of V[X] before shifting
	// (classic COSMAC VIP semantics). Default false: modern semantics,
	// V[X] shifted in place and Y ignored.
	ShiftUsesVY bool
	// JumpAddsVX makes BNNN add V[X] (the high nibble of NNN) instead of
	// V[0]. Default false: spec-normative V[0].
	JumpAddsVX bool
	// AddiSetsVF makes FX1E (ADI) set V[F] when I+V[X] overflows 0x0FFF.
	// Default false: spec-normative 16-bit wrap, VF untouched.
	AddiSetsVF bool
}

// VM holds all CHIP-8 interpreter state: memory, registers, the return
// stack, the framebuffer, the keypad, and the two timers. It is a plain
// value type manipulated entirely by the methods in this file and the
// handlers in instructions.go; it owns no host resources.
type VM struct {
	memory [MemorySize]byte
	v      [NumRegisters]byte
	i      uint16
	pc     uint16
	stack  []uint16

	screen [ScreenSize]byte
	key    [NumKeys]bool

	delay byte
	sound byte

	quirks Quirks
	rng    *rand.Rand
	logger *slog.Logger
}

// New returns a freshly powered-on VM: registers, timers, stack, and
// screen zeroed, PC at ProgramStart, and the fontset pre-loaded at
// FontsetAddr. A nil logger is replaced with slog.Default().
func New(logger *slog.Logger, quirks Quirks) *VM {
	if logger == nil {
		logger = slog.Default()
	}
	vm := &VM{
		pc:     ProgramStart,
		stack:  make([]uint16, 0, StackDepth),
		quirks: quirks,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
	copy(vm.memory[FontsetAddr:], Fontset[:])
	return vm
}

// LoadROM copies bytes into memory starting at ProgramStart. ROMs larger
// than the remaining address space are rejected rather than truncated.
func (vm *VM) LoadROM(data []byte) error {
	if len(data) > maxROMSize {
		return fmt.Errorf("chip8: rom too large: %d bytes (max %d)", len(data), maxROMSize)
	}
	copy(vm.memory[ProgramStart:], data)
	return nil
}

// Screen returns a read-only snapshot of the 64x32 monochrome framebuffer,
// row-major, one byte per cell (0 = off, nonzero = on).
func (vm *VM) Screen() [ScreenSize]byte {
	return vm.screen
}

// KeyMut returns a pointer to the boolean backing key code (code & 0x0F).
// Codes outside [0,15] return a pointer to a throwaway cell and log a
// warning; the caller's write is silently discarded.
func (vm *VM) KeyMut(code int) *bool {
	if code < 0 || code >= NumKeys {
		vm.logger.Warn("chip8: key code out of range", "code", code)
		discarded := false
		return &discarded
	}
	return &vm.key[code]
}

// SetKey sets the pressed state of a hex key. Codes outside [0,15] are
// logged at warning level and discarded.
func (vm *VM) SetKey(code byte, pressed bool) {
	*vm.KeyMut(int(code)) = pressed
}

// TickTimers decrements delay and sound per spec.md §4.5 and returns true
// iff the buzzer should be audible on this tick (edge-triggered: true
// exactly once per sound-timer expiry, when sound==1 at entry).
func (vm *VM) TickTimers() bool {
	if vm.delay > 0 {
		vm.delay--
	}
	beep := vm.sound == 1
	if vm.sound > 0 {
		vm.sound--
	}
	return beep
}

// reg reads V[idx]. idx must be in [0,15]; anything else is a programming
// error and is fatal.
func (vm *VM) reg(idx uint8) byte {
	if idx >= NumRegisters {
		vm.fatal("register index out of range", "index", idx)
	}
	return vm.v[idx]
}

// regSet writes V[idx]. See reg for the bounds contract.
func (vm *VM) regSet(idx uint8, val byte) {
	if idx >= NumRegisters {
		vm.fatal("register index out of range", "index", idx)
	}
	vm.v[idx] = val
}

// mem reads memory[addr]. addr must be in [0,4095]; anything else is a
// programming error and is fatal.
func (vm *VM) mem(addr uint16) byte {
	if addr >= MemorySize {
		vm.fatal("memory address out of range", "address", addr)
	}
	return vm.memory[addr]
}

// memSet writes memory[addr]. See mem for the bounds contract.
func (vm *VM) memSet(addr uint16, val byte) {
	if addr >= MemorySize {
		vm.fatal("memory address out of range", "address", addr)
	}
	vm.memory[addr] = val
}

func (vm *VM) fatal(msg string, args ...any) {
	vm.logger.Error(msg, args...)
	panic(fmt.Sprintf("chip8: fatal: %s", msg))
}

func (vm *VM) pushStack(addr uint16) bool {
	if len(vm.stack) >= StackDepth {
		return false
	}
	vm.stack = append(vm.stack, addr)
	return true
}

func (vm *VM) popStack() (uint16, bool) {
	if len(vm.stack) == 0 {
		return 0, false
	}
	top := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return top, true
}

// Tick performs one fetch-decode-execute cycle: it fetches the big-endian
// word at PC, dispatches on its high nibble (with secondary dispatch for
// the 0x0/0x8/0xE/0xF groups), and runs the matching handler. Each handler
// is responsible for its own PC update; unrecognised opcodes are logged
// and skipped, with PC still advancing by 2.
func (vm *VM) Tick() error {
	opcode := uint16(vm.mem(vm.pc))<<8 | uint16(vm.mem(vm.pc+1))

	x := uint8((opcode & 0x0F00) >> 8)
	y := uint8((opcode & 0x00F0) >> 4)
	n := uint8(opcode & 0x000F)
	nn := uint8(opcode & 0x00FF)
	nnn := opcode & 0x0FFF

	instr := decode(opcode)
	if instr == nil {
		vm.logger.Error("chip8: unknown opcode", "opcode", fmt.Sprintf("0x%04X", opcode), "pc", fmt.Sprintf("0x%04X", vm.pc))
		vm.pc = (vm.pc + 2) % MemorySize
		return nil
	}

	if vm.logger.Enabled(context.Background(), slog.LevelDebug) {
		vm.logger.Debug("chip8: exec", "pc", fmt.Sprintf("0x%04X", vm.pc), "opcode", fmt.Sprintf("0x%04X", opcode), "instr", instr.name)
	}

	instr.exec(vm, opcodeOperands{x: x, y: y, n: n, nn: nn, nnn: nnn})
	return nil
}
