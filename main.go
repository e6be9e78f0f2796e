package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/chippy8vm/chippy/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so the whole CLI runs
	// inside pixelgl.Run — even subcommands (like `validate`) that never
	// open a window, since cobra dispatch happens before we know which
	// one was asked for.
	pixelgl.Run(cmd.Execute)
}
