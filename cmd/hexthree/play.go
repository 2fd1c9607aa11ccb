package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexthree/internal/config"
	"github.com/vovakirdan/hexthree/internal/platform/tui"
	"github.com/vovakirdan/hexthree/internal/registry"
	"github.com/vovakirdan/hexthree/internal/storage"
)

var (
	flagConfig string
	flagPreset string
	flagLayers int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (hexmerge by default).

Controls:
  W E         - Slide up-left / up-right
  A D         - Slide left / right
  Z X         - Slide down-left / down-right
  Y U H L B N - The same six directions on the right hand
  Enter       - Keep playing after reaching the goal
  P           - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

Board presets:
  small  - 3 rings, 19 cells
  normal - 4 rings, 37 cells
  large  - 5 rings, 61 cells
  huge   - 6 rings, 91 cells

Without --preset or --layers a board menu is shown.

Examples:
  hexthree play
  hexthree play --preset small
  hexthree play hexmerge_endless --layers 7
  hexthree play --config ./my-hexmerge.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: small, normal, large, huge")
	playCmd.Flags().IntVar(&flagLayers, "layers", 0, "Board rings (overrides preset and config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "hexmerge"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'hexthree list' to see available games", gameID)
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	hm, err := config.LoadHexMerge(flagConfig)
	if err != nil {
		return err
	}

	setup := tui.GameSetup{GameID: gameID, HexMerge: hm}
	switch {
	case flagLayers > 0:
		setup.HexMerge.Board.Layers = flagLayers
	case flagPreset != "":
		if setup.Preset, err = config.ParsePreset(flagPreset); err != nil {
			return err
		}
	case !cmd.Flags().Changed("config"):
		selection, selErr := tui.RunBoardMenu(cfg, hm)
		if selErr != nil {
			return selErr
		}
		// User pressed back or quit
		if selection == nil {
			return nil
		}
		setup.GameID = selection.GameID()
		setup.Preset = selection.Preset
	}

	game, err := setup.NewGame()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", setup.GameID, "preset", setup.Preset, "seed", cfg.Seed)
	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openStore opens the scoreboard. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
