package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by ParsePreset for an unrecognised name.
var ErrUnknownPreset = errors.New("config: unknown board preset")

// BoardPreset represents a named board size.
type BoardPreset string

const (
	PresetSmall  BoardPreset = "small"
	PresetNormal BoardPreset = "normal"
	PresetLarge  BoardPreset = "large"
	PresetHuge   BoardPreset = "huge"
)

// Presets lists the presets from smallest to largest.
func Presets() []BoardPreset {
	return []BoardPreset{PresetSmall, PresetNormal, PresetLarge, PresetHuge}
}

// LayersForPreset returns the number of rings for a preset.
func LayersForPreset(preset BoardPreset) int {
	switch preset {
	case PresetSmall:
		return 3
	case PresetLarge:
		return 5
	case PresetHuge:
		return 6
	default:
		return 4
	}
}

// Cells returns the number of cells on a board of the preset's size.
func (p BoardPreset) Cells() int {
	l := LayersForPreset(p)
	return 3*l*(l-1) + 1
}

// ParsePreset resolves a preset name, ignoring case.
func ParsePreset(name string) (BoardPreset, error) {
	p := BoardPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// ApplyHexMergePreset modifies the config based on a board preset.
// Bigger boards take longer to fill, so the goal moves up with them.
func ApplyHexMergePreset(cfg *HexMergeConfig, preset BoardPreset) {
	cfg.Board.Layers = LayersForPreset(preset)
	if cfg.Rules.VictoryStage == 0 {
		return
	}
	switch preset {
	case PresetSmall:
		cfg.Rules.VictoryStage = 5
	case PresetNormal:
		cfg.Rules.VictoryStage = 7
	case PresetLarge:
		cfg.Rules.VictoryStage = 8
	case PresetHuge:
		cfg.Rules.VictoryStage = 9
	}
}
