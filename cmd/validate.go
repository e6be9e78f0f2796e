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

const validateTimerPeriods = 60

var validateConfigPath string

// validateCmd runs the Loader and a fixed number of headless timer
// periods against a ROM, without opening a window, to catch immediate
// crashes (an oversized ROM, an opcode fault at startup). It is Loader
// validation, not a debugger — spec.md's Non-goals exclude a debugger,
// not a dry-run of the Loader.
var validateCmd = &cobra.Command{
	Use:   "validate `path/to/rom`",
	Short: "load a rom and run it headlessly for 60 timer periods (one second at the default 60Hz)",
	Args:  cobra.ExactArgs(1),
	Run:   validateROM,
}

func init() {
	validateCmd.Flags().StringVar(&validateConfigPath, "config", "", "path to a chippy YAML config file")
}

func validateROM(cmd *cobra.Command, args []string) {
	cfg := config.Default()
	if validateConfigPath != "" {
		loaded, err := config.Load(validateConfigPath)
		if err != nil {
			fmt.Printf("error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	data, err := rom.LoadFile(args[0])
	if err != nil {
		fmt.Printf("error loading rom: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	vm := chip8.New(logger, cfg.Quirks.ToChip8())
	if err := vm.LoadROM(data); err != nil {
		fmt.Printf("error loading rom into memory: %v\n", err)
		os.Exit(1)
	}

	host := display.NewHeadless()
	for i := 0; i < validateTimerPeriods; i++ {
		if err := driver.RunTimerPeriod(vm, host, cfg.TicksPerTimer()); err != nil {
			fmt.Printf("emulation error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("ok: ran %d timer periods (%d ticks)\n", validateTimerPeriods, validateTimerPeriods*cfg.TicksPerTimer())
}
