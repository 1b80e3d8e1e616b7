// Package preset defines the named color-grading presets and their settings.
package preset

import (
	"errors"
	"fmt"
	"strings"
)

// Preset selects one of the built-in color-grading recipes.
type Preset int

const (
	Legacy Preset = iota
	Ares
)

var ErrUnknownPreset = errors.New("unknown preset")

// Names lists the recognized preset names in parse order.
func Names() []string {
	return []string{"legacy", "ares"}
}

// Parse resolves a preset by name, case-insensitively.
func Parse(name string) (Preset, error) {
	switch strings.ToLower(name) {
	case "legacy":
		return Legacy, nil
	case "ares":
		return Ares, nil
	}
	return 0, fmt.Errorf("%w %q, available presets: %s",
		ErrUnknownPreset, name, strings.Join(Names(), ", "))
}

func (p Preset) String() string {
	switch p {
	case Legacy:
		return "legacy"
	case Ares:
		return "ares"
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// Lookup returns the grading settings for a preset.
func Lookup(p Preset) (Settings, error) {
	switch p {
	case Legacy:
		return legacy, nil
	case Ares:
		return ares, nil
	}
	return Settings{}, fmt.Errorf("%w %q", ErrUnknownPreset, p)
}
