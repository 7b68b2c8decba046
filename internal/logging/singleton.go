package logging

import (
	"sync"
)

var (
	instance *Logger
	mu       sync.Mutex
)

// InitLogger initializes the process-wide logger. It is safe to call more
// than once; later calls replace the instance (tests rely on this).
func InitLogger(config *Config) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetGlobalLogger returns the process-wide logger. If InitLogger has not been
// called, a default stderr-only logger is created so early failures are
// still visible.
func GetGlobalLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		logger, err := NewLogger(&Config{
			Level:      LevelInfo,
			File:       "./logs/contactrelay.log",
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		})
		if err != nil {
			panic("failed to initialize default logger: " + err.Error())
		}
		instance = logger
	}

	return instance
}
