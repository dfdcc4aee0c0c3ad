package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const (
	DefaultSettingsFile = "app_config.toml"

	gameConfigName = "FFXIV.cfg"
	gameExeName    = "ffxivboot.exe"
)

// Settings is the helper's own record of where the game lives.
type Settings struct {
	ConfigPath string `toml:"config_path" validate:"regular_file"`
	ExePath    string `toml:"exe_path" validate:"regular_file"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("regular_file", func(fl validator.FieldLevel) bool {
		return isRegularFile(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func isRegularFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func validPath(path string) bool {
	return validate.Var(path, "regular_file") == nil
}

// loadSettings never fails: a missing or unreadable file yields an empty
// record, which validation then fills in and persists.
func loadSettings(path string) Settings {
	var settings Settings
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("Settings file not found, a new one will be created")
		} else {
			log.Warn().Err(err).Str("path", path).
				Msg("Malformed settings file, creating a new one. Back up the old file now if you don't want to lose any changes")
		}
		return Settings{}
	}
	return settings
}

func saveSettings(path string, settings Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// validateSettings prompts for every path that does not point at a regular file.
func validateSettings(settings Settings, c *Console) (Settings, error) {
	if err := validate.Struct(settings); err == nil {
		return settings, nil
	}

	fields := []struct {
		fileName string
		value    *string
	}{
		{gameConfigName, &settings.ConfigPath},
		{gameExeName, &settings.ExePath},
	}
	for _, f := range fields {
		path, err := c.PromptPath(f.fileName, *f.value, validPath)
		if err != nil {
			return Settings{}, err
		}
		*f.value = path
	}
	return settings, nil
}

// persistIfChanged writes updated to path only when it differs from loaded.
func persistIfChanged(path string, loaded, updated Settings) (bool, error) {
	if loaded == updated {
		return false, nil
	}
	if err := saveSettings(path, updated); err != nil {
		return false, err
	}
	log.Info().Str("path", path).Msg("Settings saved")
	return true, nil
}
