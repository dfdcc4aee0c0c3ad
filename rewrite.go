package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrMalformedLine is returned when a line starting with a target key has no value token.
var ErrMalformedLine = errors.New("malformed config line")

// RewriteText applies overrides to every line of text that starts with an
// override key. Lines are split on '\n' only, so CR bytes, BOMs, blank lines
// and a missing final newline all survive. Within a matched line only the
// second whitespace-separated token is replaced; spacing around it is kept.
func RewriteText(text string, overrides []Override) (string, error) {
	if len(overrides) == 0 {
		return text, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, o := range overrides {
			// prefix match: "ScreenLeftFoo 1" is a candidate, "MyScreenLeft 1" is not
			if !strings.HasPrefix(line, o.Key) {
				continue
			}
			start, end, ok := valueSpan(line)
			if !ok {
				return "", fmt.Errorf("line %d (%s): %w: %q", i+1, o.Key, ErrMalformedLine, line)
			}
			lines[i] = line[:start] + o.Value + line[end:]
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

// valueSpan locates the second run of non-whitespace bytes in line.
func valueSpan(line string) (start, end int, ok bool) {
	token := 0
	i := 0
	for i < len(line) {
		for i < len(line) && isASCIISpace(line[i]) {
			i++
		}
		if i == len(line) {
			break
		}
		start = i
		for i < len(line) && !isASCIISpace(line[i]) {
			i++
		}
		if token == 1 {
			return start, i, true
		}
		token++
	}
	return 0, 0, false
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ApplyPreset rewrites the game config at path in place. The file is read and
// written through one handle and truncated to the new length, so a shorter
// value never leaves stale bytes behind. PresetUnchanged does not open the file.
func ApplyPreset(path string, preset Preset) (err error) {
	overrides := preset.Overrides()
	if len(overrides) == 0 {
		return nil
	}

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open game config: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close game config: %w", cerr)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read game config: %w", err)
	}
	log.Info().Str("path", path).Int("bytes", len(data)).Msg("File successfully read")

	updated, err := RewriteText(string(data), overrides)
	if err != nil {
		return err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind game config: %w", err)
	}
	if _, err := file.WriteString(updated); err != nil {
		return fmt.Errorf("failed to write game config: %w", err)
	}
	if err := file.Truncate(int64(len(updated))); err != nil {
		return fmt.Errorf("failed to truncate game config: %w", err)
	}
	// the game must see the new contents once it starts
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to flush game config: %w", err)
	}

	log.Info().Str("path", path).Stringer("preset", preset).Msg("Game config updated")
	return nil
}
