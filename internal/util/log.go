package util

import (
	"go.uber.org/zap"
	"k8s.io/utils/env"
)

var Logger *zap.Logger

func InitializeLogger() {
	if env.GetString("ASYNC_LOG_FORMAT", "") == "json" {
		Logger, _ = zap.NewProduction()
		return
	}

	Logger, _ = zap.NewDevelopment()
}
