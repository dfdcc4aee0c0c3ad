package main

import "fmt"

// Preset is a display layout written into the game config before launch.
// The zero value leaves the config untouched.
type Preset int

const (
	PresetUnchanged Preset = iota
	PresetFullscreenRight
	PresetWindowedRight
	PresetWindowedLeft
)

const (
	KeyScreenLeft = "ScreenLeft"
	KeyScreenMode = "ScreenMode"
)

// Override replaces the value of every line starting with Key.
type Override struct {
	Key   string
	Value string
}

type presetInfo struct {
	preset      Preset
	description string
	screenLeft  string
	screenMode  string
}

// Menu order matters: the index is the number the user types.
// 4294965376 is -2048 as uint32 and is written verbatim.
var presetTable = []presetInfo{
	{PresetFullscreenRight, "Fullscreen - Right Window", "0", "2"},
	{PresetWindowedRight, "Windowed - Right Window", "0", "0"},
	{PresetWindowedLeft, "Windowed - Left Window", "4294965376", "0"},
}

func presetFromChoice(choice int) (Preset, bool) {
	if choice < 0 || choice >= len(presetTable) {
		return PresetUnchanged, false
	}
	return presetTable[choice].preset, true
}

func (p Preset) info() (presetInfo, bool) {
	for _, info := range presetTable {
		if info.preset == p {
			return info, true
		}
	}
	return presetInfo{}, false
}

// Choice returns the menu number of p, or -1 for PresetUnchanged.
func (p Preset) Choice() int {
	for i, info := range presetTable {
		if info.preset == p {
			return i
		}
	}
	return -1
}

// Overrides returns the key/value pairs p writes, in file-scan priority order.
// PresetUnchanged has none.
func (p Preset) Overrides() []Override {
	info, ok := p.info()
	if !ok {
		return nil
	}
	return []Override{
		{Key: KeyScreenLeft, Value: info.screenLeft},
		{Key: KeyScreenMode, Value: info.screenMode},
	}
}

func (p Preset) String() string {
	switch p {
	case PresetUnchanged:
		return "Unchanged"
	case PresetFullscreenRight:
		return "FullscreenRight"
	case PresetWindowedRight:
		return "WindowedRight"
	case PresetWindowedLeft:
		return "WindowedLeft"
	}
	return fmt.Sprintf("Preset(%d)", int(p))
}
