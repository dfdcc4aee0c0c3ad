package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	Version = "dev" // overridden at build time
)

type app struct {
	console      *Console
	settingsPath string
	launch       func(exePath string) error
}

// run loads settings, applies the chosen preset and starts the game.
// The game config is written and closed before the launcher is called.
func (a *app) run() error {
	a.console.drawTitle()

	loaded := loadSettings(a.settingsPath)
	settings, err := validateSettings(loaded, a.console)
	if err != nil {
		return err
	}
	if _, err := persistIfChanged(a.settingsPath, loaded, settings); err != nil {
		return err
	}

	preset, err := a.console.ChoosePreset()
	if err != nil {
		return err
	}

	if preset != PresetUnchanged {
		a.console.Status(fmt.Sprintf("You chose %d", preset.Choice()), FgCyan)
		if err := ApplyPreset(settings.ConfigPath, preset); err != nil {
			return err
		}
	}

	a.console.Status("Starting game...", FgYellow)
	return a.launch(settings.ExePath)
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ffxiv-launch",
		Short:         "Apply a window preset to FFXIV.cfg and start the game",
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &app{
				console:      NewConsole(cmd.InOrStdin(), cmd.OutOrStdout()),
				settingsPath: DefaultSettingsFile,
				launch:       launchGame,
			}
			return a.run()
		},
	}
}

func main() {
	enableVirtualTerminal()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Launch aborted")
		os.Exit(1)
	}
}
