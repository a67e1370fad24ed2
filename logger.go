package transcode

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   = zap.NewNop()
	loggerMu sync.RWMutex
)

// Logger returns the package logger. It is a no-op logger until SetLogger is
// called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger sets the package logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
