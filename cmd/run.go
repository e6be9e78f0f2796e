package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chippy8vm/chippy/internal/chip8"
	"github.com/chippy8vm/chippy/internal/config"
	"github.com/chippy8vm/chippy/internal/display"
	"github.com/chippy8vm/chippy/internal/driver"
	"github.com/chippy8vm/chippy/internal/rom"
)

var (
	runConfigPath string
	runMute       bool
	runLogLevel   string
)

// runCmd runs the chippy virtual machine against a ROM until the window
// is closed.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to a chippy YAML config file")
	runCmd.Flags().BoolVar(&runMute, "mute", false, "disable the buzzer")
	runCmd.Flags().StringVar(&runLogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func runChippy(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	cfg, err := loadRunConfig()
	if err != nil {
		fmt.Printf("error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := rom.LoadFile(pathToROM)
	if err != nil {
		fmt.Printf("error loading rom: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(runLogLevel)
	vm := chip8.New(logger, cfg.Quirks.ToChip8())
	if err := vm.LoadROM(data); err != nil {
		fmt.Printf("error loading rom into memory: %v\n", err)
		os.Exit(1)
	}

	win, err := display.NewWindow(cfg.Keymap, runMute)
	if err != nil {
		fmt.Printf("error creating a new window: %v\n", err)
		os.Exit(1)
	}

	if err := driver.Loop(vm, win, cfg); err != nil {
		fmt.Printf("emulation error: %v\n", err)
		os.Exit(1)
	}
}

func loadRunConfig() (*config.Config, error) {
	if runConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(runConfigPath)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
