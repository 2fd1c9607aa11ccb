package tui

import (
	"fmt"

	"github.com/vovakirdan/hexthree/internal/config"
	"github.com/vovakirdan/hexthree/internal/games/hexmerge"
	"github.com/vovakirdan/hexthree/internal/registry"
)

// GameSetup describes how a session builds its game.
type GameSetup struct {
	GameID   string
	Preset   config.BoardPreset // empty keeps the configured board size
	HexMerge config.HexMergeConfig
}

// settingsConfigurer is implemented by games that take Hex Merge rules.
type settingsConfigurer interface {
	Configure(hexmerge.Settings) error
}

// NewGame creates the game and applies the configured rules to it.
func (s GameSetup) NewGame() (registry.Game, error) {
	game, err := registry.Create(s.GameID)
	if err != nil {
		return nil, err
	}

	if c, ok := game.(settingsConfigurer); ok {
		cfg := s.HexMerge
		if s.Preset != "" {
			config.ApplyHexMergePreset(&cfg, s.Preset)
		}
		if err := c.Configure(cfg.Settings()); err != nil {
			return nil, fmt.Errorf("configure %s: %w", s.GameID, err)
		}
	}

	return game, nil
}
