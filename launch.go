package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// launchGame starts exePath from its own directory and returns without waiting.
func launchGame(exePath string) error {
	if exePath == "" {
		return fmt.Errorf("game executable path is not set")
	}

	cmd := exec.Command(exePath)
	cmd.Dir = filepath.Dir(exePath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", exePath, err)
	}

	log.Info().Str("exe", exePath).Int("pid", cmd.Process.Pid).Msg("Game started")
	return cmd.Process.Release()
}
