package reup

import (
	"log/slog"
	"sync/atomic"
)

// Diagnostics sink. Filtering results never depend on it.
var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the diagnostics sink for skipped-version and fallback
// messages. Safe to call concurrently with Filter. A nil argument restores
// slog.Default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func diag() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}

	return slog.Default()
}
