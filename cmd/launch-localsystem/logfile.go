package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// createLogFile creates a timestamped file in the temp directory:
// {prefix}-{timestamp}.log
func createLogFile(prefix string) (*os.File, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("%s-%s.log", prefix, timestamp)
	logPath := filepath.Join(os.TempDir(), filename)

	f, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}
	return f, nil
}
