package hexmerge

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hexthree/internal/hex"
)

// ErrInvalidSettings is returned by Settings.Validate.
var ErrInvalidSettings = errors.New("hexmerge: invalid settings")

// Settings are the tunable rules of one game.
type Settings struct {
	Layers          int     // rings around the centre cell, 1 or more
	VictoryStage    int     // stage that wins the game; 0 disables victory
	UpgradeOdds     int     // a spawned piece starts at stage 1 with chance 1/UpgradeOdds; 0 disables
	MergeMultiplier int     // a merge scores the merged value times this
	Speed           float64 // slides per second; sets the slide animation length
	SpawnTicks      int     // length of the spawn animation in ticks
}

// DefaultSettings returns the rules of a normal game.
func DefaultSettings() Settings {
	return Settings{
		Layers:          4,
		VictoryStage:    7,
		UpgradeOdds:     5,
		MergeMultiplier: 3,
		Speed:           5,
		SpawnTicks:      6,
	}
}

// Validate checks that the settings describe a playable game.
func (s Settings) Validate() error {
	if s.Layers < 1 {
		return fmt.Errorf("%w: layers=%d", hex.ErrInvalidLayers, s.Layers)
	}
	switch {
	case s.VictoryStage < 0:
		return fmt.Errorf("%w: victory stage %d", ErrInvalidSettings, s.VictoryStage)
	case s.UpgradeOdds < 0:
		return fmt.Errorf("%w: upgrade odds %d", ErrInvalidSettings, s.UpgradeOdds)
	case s.MergeMultiplier < 0:
		return fmt.Errorf("%w: merge multiplier %d", ErrInvalidSettings, s.MergeMultiplier)
	case s.Speed < 0:
		return fmt.Errorf("%w: speed %v", ErrInvalidSettings, s.Speed)
	case s.SpawnTicks < 0:
		return fmt.Errorf("%w: spawn ticks %d", ErrInvalidSettings, s.SpawnTicks)
	}
	return nil
}
