package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/hexthree/internal/games/hexmerge"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadHexMerge("")
	if err != nil {
		t.Fatalf("LoadHexMerge failed: %v", err)
	}
	if cfg != DefaultHexMergeConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultHexMergeConfig())
	}
	if cfg.Settings() != hexmerge.DefaultSettings() {
		t.Errorf("Settings() = %+v, want the game defaults", cfg.Settings())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  layers: 6\nrules:\n  victory_stage: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHexMerge(path)
	if err != nil {
		t.Fatalf("LoadHexMerge failed: %v", err)
	}
	if cfg.Board.Layers != 6 {
		t.Errorf("Layers = %d, want 6", cfg.Board.Layers)
	}
	if cfg.Rules.VictoryStage != 0 {
		t.Errorf("VictoryStage = %d, want 0", cfg.Rules.VictoryStage)
	}
	// Keys not in the file keep their defaults.
	if cfg.Animation.Speed != 5 || cfg.Rules.MergeMultiplier != 3 {
		t.Errorf("missing keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadHexMerge(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHexMerge(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestLoadLocalConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "hexmerge.yaml"), []byte("board:\n  layers: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHexMerge("")
	if err != nil {
		t.Fatalf("LoadHexMerge failed: %v", err)
	}
	if cfg.Board.Layers != 2 {
		t.Errorf("Layers = %d, want 2 from ./configs", cfg.Board.Layers)
	}
}

func TestUserConfigWins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	userDir := filepath.Join(home, ".hexthree", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "hexmerge.yaml"), []byte("rules:\n  upgrade_odds: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "hexmerge.yaml"), []byte("rules:\n  upgrade_odds: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _ := LoadHexMerge("")
	if cfg.Rules.UpgradeOdds != 0 {
		t.Errorf("UpgradeOdds = %d, want 0 from the user config", cfg.Rules.UpgradeOdds)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  BoardPreset
		layers  int
		cells   int
		victory int
	}{
		{PresetSmall, 3, 19, 5},
		{PresetNormal, 4, 37, 7},
		{PresetLarge, 5, 61, 8},
		{PresetHuge, 6, 91, 9},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultHexMergeConfig()
			ApplyHexMergePreset(&cfg, tt.preset)
			if cfg.Board.Layers != tt.layers {
				t.Errorf("Layers = %d, want %d", cfg.Board.Layers, tt.layers)
			}
			if cfg.Rules.VictoryStage != tt.victory {
				t.Errorf("VictoryStage = %d, want %d", cfg.Rules.VictoryStage, tt.victory)
			}
			if tt.preset.Cells() != tt.cells {
				t.Errorf("Cells() = %d, want %d", tt.preset.Cells(), tt.cells)
			}
			if err := cfg.Settings().Validate(); err != nil {
				t.Errorf("preset settings invalid: %v", err)
			}
		})
	}
}

func TestPresetKeepsVictoryDisabled(t *testing.T) {
	cfg := DefaultHexMergeConfig()
	cfg.Rules.VictoryStage = 0
	ApplyHexMergePreset(&cfg, PresetHuge)
	if cfg.Rules.VictoryStage != 0 {
		t.Errorf("VictoryStage = %d, want 0", cfg.Rules.VictoryStage)
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(" Large "); err != nil || p != PresetLarge {
		t.Errorf("ParsePreset(Large) = %q, %v", p, err)
	}
	if _, err := ParsePreset("gigantic"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(gigantic) error = %v, want ErrUnknownPreset", err)
	}
}
