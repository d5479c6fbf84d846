// Package plog builds the structured logger pcomb's CLI and examples
// share, following hemanta212-scaf's convention of a single
// constructor returning a configured *zap.Logger rather than using the
// global zap.L(). The teacher itself logs only through fmt/panic
// (langlang is a library, not a service), so this ambient concern is
// grounded in the rest of the example pack instead.
package plog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/clarete/pcomb/pconfig"
)

// New builds a *zap.Logger from cfg's "log.level"/"log.development"
// settings: development mode gets zap's human-readable console
// encoder, production mode gets JSON output. In both modes the level
// is the one parsed from "log.level".
func New(cfg pconfig.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("plog: %w", err)
	}

	var zcfg zap.Config
	if cfg.GetBool("log.development") {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("plog: building logger: %w", err)
	}
	return logger, nil
}

// Must is New, panicking on error — for the CLI's init path, where a
// broken logger configuration is a startup-time grammar-style defect,
// not a recoverable runtime condition.
func Must(cfg pconfig.Config) *zap.Logger {
	logger, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return logger
}
