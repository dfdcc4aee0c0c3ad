package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	AppName = "FFXIV Screen Launcher"
)

const (
	FgBlack = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// ErrNoInput is returned when standard input closes while a prompt is waiting.
var ErrNoInput = errors.New("no more input on stdin")

type MenuItem struct {
	Key         string
	Description string
}

var presetMenu = func() []MenuItem {
	items := make([]MenuItem, 0, len(presetTable))
	for i, info := range presetTable {
		items = append(items, MenuItem{Key: strconv.Itoa(i), Description: info.description})
	}
	return items
}()

// Prompt loops run until they reach promptDone.
type promptState int

const (
	promptNeedInput promptState = iota
	promptDone
)

// Console reads answers line by line and writes prompts and status messages.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		color: isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Console) colorize(text string, color int) string {
	if !c.color {
		return text
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}

func (c *Console) drawTitle() {
	width := 40
	fmt.Fprintln(c.out, c.colorize(strings.Repeat("═", width), FgCyan))
	fmt.Fprintln(c.out, c.colorize(fmt.Sprintf(" %s %s", AppName, Version), FgCyan))
	fmt.Fprintln(c.out, c.colorize(strings.Repeat("═", width), FgCyan))
}

func (c *Console) drawMenu(items []MenuItem) {
	for _, item := range items {
		fmt.Fprintf(c.out, "%s %s\n", c.colorize(item.Key+")", FgYellow), c.colorize(item.Description, FgWhite))
	}
}

func (c *Console) Status(status string, color int) {
	fmt.Fprintln(c.out, c.colorize(status, color))
}

// readLine returns one line without its terminator. A final unterminated line
// is still returned; only a read with nothing left yields ErrNoInput.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			return "", ErrNoInput
		}
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return line, nil
}

// PromptPath asks for the named file until valid accepts the trimmed answer.
// current is returned as is when it is already valid.
func (c *Console) PromptPath(fileName, current string, valid func(string) bool) (string, error) {
	path := current
	state := promptNeedInput
	if valid(path) {
		state = promptDone
	}

	for state == promptNeedInput {
		fmt.Fprintln(c.out, c.colorize(fmt.Sprintf("Enter the path to your %s file.", fileName), FgGreen))
		line, err := c.readLine()
		if err != nil {
			return "", fmt.Errorf("waiting for %s path: %w", fileName, err)
		}
		path = strings.TrimSpace(line)
		if valid(path) {
			state = promptDone
		}
	}
	return path, nil
}

// ChoosePreset shows the preset menu until the user picks a listed number or
// submits an empty line, which means PresetUnchanged. Anything unparsable or
// out of range shows the menu again.
func (c *Console) ChoosePreset() (Preset, error) {
	preset := PresetUnchanged
	state := promptNeedInput

	for state == promptNeedInput {
		c.drawMenu(presetMenu)
		fmt.Fprintln(c.out, c.colorize("Enter a choice:", FgGreen))

		line, err := c.readLine()
		if err != nil {
			return PresetUnchanged, fmt.Errorf("waiting for preset choice: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			c.Status("Launching with prior settings.", FgYellow)
			return PresetUnchanged, nil
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			continue
		}
		if p, ok := presetFromChoice(choice); ok {
			preset = p
			state = promptDone
		}
	}
	return preset, nil
}
