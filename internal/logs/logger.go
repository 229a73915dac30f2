package logs

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

var (
	// Logger discards everything until Initialize is called.
	Logger = zap.NewNop().Sugar()
	mu     sync.Mutex
)

// Initialize points the logger at debug.log inside logDir.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}
	logPath := filepath.Join(logDir, "debug.log")

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	_ = Logger.Sync()
	Logger = l.Sugar().Named("memo")
	Logger.Debugw("logger initialized", "path", logPath)

	return nil
}

// Close flushes buffered log entries.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	return Logger.Sync()
}
