package runtime

import (
	"context"

	envelopepkg "github.com/bookable/eventlog/internal/runtime/envelope"
)

// NoOpLogger implements the Logger facade without validation, construction,
// or I/O. Every call succeeds and returns an empty Outcome. Returned by Get
// before initialization so that logging call sites never need a nil check.
type NoOpLogger struct{}

var _ Logger = NoOpLogger{}

func (NoOpLogger) Log(context.Context, envelopepkg.Level, string, ...Option) (Outcome, error) {
	return Outcome{}, nil
}

func (NoOpLogger) Debug(context.Context, string, ...Option) (Outcome, error) {
	return Outcome{}, nil
}

func (NoOpLogger) Info(context.Context, string, ...Option) (Outcome, error) {
	return Outcome{}, nil
}

func (NoOpLogger) Warning(context.Context, string, ...Option) (Outcome, error) {
	return Outcome{}, nil
}

func (NoOpLogger) Error(context.Context, string, ...Option) (Outcome, error) {
	return Outcome{}, nil
}
