// SPDX-License-Identifier: MIT

package commands

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/cycleratio/internal/config"
)

// zapr maps logr V(n) to zap level -n, so debug opens the orchestrator's
// V(1) lines and trace opens the per-probe V(2) lines.
const (
	debugLevel = zapcore.Level(-1)
	traceLevel = zapcore.Level(-2)
)

// newLogger builds a zap logger from cfg and wraps it as a logr.Logger.
// verbose forces the trace level. The returned func flushes the logger.
func newLogger(cfg config.Log, verbose bool) (logr.Logger, func(), error) {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.Format, "json") {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(zapLevel(cfg.Level, verbose))

	zl, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

func zapLevel(level string, verbose bool) zapcore.Level {
	if verbose {
		return traceLevel
	}
	switch strings.ToLower(level) {
	case "trace":
		return traceLevel
	case "debug":
		return debugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
