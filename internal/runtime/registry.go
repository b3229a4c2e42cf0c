package runtime

import (
	"context"
	"sync"

	configpkg "github.com/bookable/eventlog/internal/runtime/config"
)

// Process-wide logger state. Explicit by design: there is no lazy
// construction with hidden defaults. Init creates the instance; before any
// Init, Get hands out a no-op logger so callers (tests especially) can log
// unconditionally without risking a ConfigurationError.
var (
	globalMu     sync.RWMutex
	globalLogger *EventLogger
)

// Init constructs the process-wide EventLogger. Calling Init again replaces
// the previous instance; the replace policy (rather than rejecting double
// initialization) lets in-process tests re-initialize between cases. The
// replaced instance is closed.
func Init(ctx context.Context, explicit configpkg.Config, deps Dependencies) (*EventLogger, error) {
	logger, err := New(ctx, explicit, deps)
	if err != nil {
		return nil, err
	}

	globalMu.Lock()
	previous := globalLogger
	globalLogger = logger
	globalMu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}
	return logger, nil
}

// Get returns the process-wide logger, or a no-op logger when Init has not
// been called. The no-op logger satisfies the full facade contract while
// performing no validation, no construction, and no I/O.
func Get() Logger {
	globalMu.RLock()
	logger := globalLogger
	globalMu.RUnlock()

	if logger == nil {
		return NoOpLogger{}
	}
	return logger
}

// Reset drops the process-wide logger, returning Get to the no-op state.
// Intended for tests.
func Reset() {
	globalMu.Lock()
	previous := globalLogger
	globalLogger = nil
	globalMu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}
}
