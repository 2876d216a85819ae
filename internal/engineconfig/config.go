// Package engineconfig loads engine tuning knobs via viper. The teacher
// repo's cmd/server/main.go calls a config.Load(path) that resolves to
// no package anywhere in the retrieved pack, so this is a fresh
// implementation of that same shape (flag-driven path, struct with a
// Logging sub-section matching the teacher's LoggingConfig{Level,
// Format}), generalized from "server config" to "engine tuning config"
// since this module has no server to configure.
package engineconfig

import (
	"fmt"

	"github.com/dreamtides/rules-engine/internal/enginelog"
	"github.com/spf13/viper"
)

// SearchConfig holds the UCT1 search tuning knobs named in §4.10/§9.
type SearchConfig struct {
	Iterations          int     `mapstructure:"iterations"`
	ExplorationConstant float64 `mapstructure:"exploration_constant"`
	MaxPlayoutActions   int     `mapstructure:"max_playout_actions"`
}

// BattleConfig holds the rules knobs §4.8 leaves as named constants
// rather than spec-fixed literals.
type BattleConfig struct {
	RoundLimit      int `mapstructure:"round_limit"`
	HandSizeLimit   int `mapstructure:"hand_size_limit"`
	BattlefieldLimit int `mapstructure:"battlefield_limit"`
	PointsToWin     int `mapstructure:"points_to_win"`
}

// Config is the top-level engine configuration, loaded from a single
// file via Load.
type Config struct {
	Logging enginelog.Config `mapstructure:"logging"`
	Search  SearchConfig     `mapstructure:"search"`
	Battle  BattleConfig     `mapstructure:"battle"`
}

// Defaults returns the configuration used when no file is present,
// matching the constants this module otherwise hardcodes
// (effects.RoundLimit, effects.HandSizeLimit, effects.BattlefieldLimit,
// battle.BattleState's default PointsToWin, uct.DefaultConfig).
func Defaults() Config {
	return Config{
		Logging: enginelog.Config{Level: "info", Format: "console"},
		Search: SearchConfig{
			Iterations:          1000,
			ExplorationConstant: 1.4142135623730951,
			MaxPlayoutActions:   200,
		},
		Battle: BattleConfig{
			RoundLimit:       25,
			HandSizeLimit:    9,
			BattlefieldLimit: 8,
			PointsToWin:      25,
		},
	}
}

// Load reads configuration from path (YAML, TOML, or JSON — viper
// detects by extension, matching the teacher's config/config.yaml
// convention), overlaying it onto Defaults() so a partial file only
// overrides the knobs it names.
func Load(path string) (Config, error) {
	cfg := Defaults()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("engineconfig: reading %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("engineconfig: decoding %s: %w", path, err)
	}
	return cfg, nil
}
