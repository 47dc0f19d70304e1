package commands

import (
	"fmt"

	"secure_message_service/internal/pkg/config"
	"secure_message_service/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
