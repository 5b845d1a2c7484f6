package logger

import (
	"strings"

	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

// Init builds the global logger. APP_ENV=prod switches to JSON output.
func Init(mode string) error {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return err
	}
	sugar = zapLogger.Sugar()
	return nil
}

// L returns the process-wide sugared logger
func L() *zap.SugaredLogger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return sugar
}

func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
