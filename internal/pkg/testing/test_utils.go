// Package testing provides shared helpers for unit and integration tests.
package testing

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"secure_message_service/internal/pkg/config"
	"secure_message_service/internal/pkg/logger"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// CreateTestFile creates a test file with the given content
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}
