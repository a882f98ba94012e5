package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger

// Init builds the process-wide logger. Production config by default,
// development config when env is "development".
func Init(env string) error {
	var cfg zap.Config

	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	log = l
	return nil
}

func Get() *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
