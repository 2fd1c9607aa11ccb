// Package config provides YAML-based game configuration loading and
// board size presets.
package config

import "github.com/vovakirdan/hexthree/internal/games/hexmerge"

// HexMergeConfig contains all configuration for the Hex Merge game.
type HexMergeConfig struct {
	Board     HexMergeBoard     `yaml:"board"`
	Rules     HexMergeRules     `yaml:"rules"`
	Animation HexMergeAnimation `yaml:"animation"`
}

// HexMergeBoard defines the board shape.
type HexMergeBoard struct {
	Layers int `yaml:"layers"`
}

// HexMergeRules defines scoring, spawning and the win condition.
type HexMergeRules struct {
	VictoryStage    int `yaml:"victory_stage"`
	UpgradeOdds     int `yaml:"upgrade_odds"`
	MergeMultiplier int `yaml:"merge_multiplier"`
}

// HexMergeAnimation defines presentation timing.
type HexMergeAnimation struct {
	Speed      float64 `yaml:"speed"`       // slides per second
	SpawnTicks int     `yaml:"spawn_ticks"` // ticks at the platform tick rate
}

// Settings converts the configuration into game rules.
func (c HexMergeConfig) Settings() hexmerge.Settings {
	return hexmerge.Settings{
		Layers:          c.Board.Layers,
		VictoryStage:    c.Rules.VictoryStage,
		UpgradeOdds:     c.Rules.UpgradeOdds,
		MergeMultiplier: c.Rules.MergeMultiplier,
		Speed:           c.Animation.Speed,
		SpawnTicks:      c.Animation.SpawnTicks,
	}
}
