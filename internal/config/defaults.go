package config

import (
	_ "embed"
)

//go:embed defaults/hexmerge.yaml
var defaultHexMergeYAML []byte

// DefaultHexMergeConfig returns the default Hex Merge configuration.
func DefaultHexMergeConfig() HexMergeConfig {
	return HexMergeConfig{
		Board: HexMergeBoard{
			Layers: 4,
		},
		Rules: HexMergeRules{
			VictoryStage:    7,
			UpgradeOdds:     5,
			MergeMultiplier: 3,
		},
		Animation: HexMergeAnimation{
			Speed:      5,
			SpawnTicks: 6,
		},
	}
}
