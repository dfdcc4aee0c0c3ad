//go:build windows

package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
)

// enableVirtualTerminal turns on ANSI escape handling for the stdout console.
func enableVirtualTerminal() {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		// not a console, e.g. redirected to a file
		return
	}
	if err := windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		log.Debug().Err(err).Msg("Could not enable virtual terminal processing")
	}
}
