package bootstrap

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger memilih konfigurasi zap dari APP_ENV. Selain "production"
// dan "staging" dianggap development. LOG_LEVEL opsional.
func NewLogger(appEnv, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(appEnv)) {
	case "production", "staging":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

// MustInitLogger membuat logger, memasangnya sebagai global, dan
// mengembalikan logger bernama untuk proses ini.
func MustInitLogger(appEnv, level, name string) *zap.Logger {
	logger, err := NewLogger(appEnv, level)
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger.Named(name)
}
