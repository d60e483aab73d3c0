package logger

import "go.uber.org/zap"

func NewLogger() *zap.Logger {
	consoleConfig := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	consoleLogger, err := consoleConfig.Build()
	if err != nil {
		panic(err)
	}

	return consoleLogger
}
