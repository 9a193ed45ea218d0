package badger

import (
	"fmt"
	"log/slog"
	"strings"
)

// slogLogger routes badger's internal logging through slog.
// Badger's Info output is chatty during compaction, so it is logged at Debug.
type slogLogger struct{}

func (slogLogger) Errorf(format string, args ...interface{}) {
	slog.Error("[Badger] " + trimmed(format, args...))
}

func (slogLogger) Warningf(format string, args ...interface{}) {
	slog.Warn("[Badger] " + trimmed(format, args...))
}

func (slogLogger) Infof(format string, args ...interface{}) {
	slog.Debug("[Badger] " + trimmed(format, args...))
}

func (slogLogger) Debugf(format string, args ...interface{}) {
	slog.Debug("[Badger] " + trimmed(format, args...))
}

func trimmed(format string, args ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
