// Package enginelog wraps zap the way the teacher repo's cmd/server/
// main.go's initLogger does, so every engine package logs through the
// same structured, field-based convention rather than ad hoc fmt calls.
package enginelog

import (
	"github.com/dreamtides/rules-engine/internal/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config mirrors the teacher's LoggingConfig{Level, Format} shape.
type Config struct {
	Level  string
	Format string
}

// New builds a *zap.Logger from cfg, ported directly from
// cmd/server/main.go's initLogger: "json" format selects zap's
// production encoder, anything else selects the development encoder
// with colorized levels; an unrecognized level falls back to Info.
func New(cfg Config) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// Fields used throughout the engine for structured logging of common
// values, so call sites spell the same key the same way everywhere.
func Battle(seed uint64) zap.Field  { return zap.Uint64("battle_seed", seed) }
func Player(name core.PlayerName) zap.Field {
	return zap.String("player", name.String())
}
func ActionType(t string) zap.Field   { return zap.String("action_type", t) }
func Card(id core.CardId) zap.Field   { return zap.Int("card_id", int(id)) }
