package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configpkg "github.com/bookable/eventlog/internal/runtime/config"
	loggingpkg "github.com/bookable/eventlog/internal/runtime/logging"
)

func testDeps(pub *stubPublisher) Dependencies {
	return Dependencies{
		Logger:         loggingpkg.NewNopServiceLogger(),
		Publisher:      pub,
		DisableMetrics: true,
	}
}

func TestGetBeforeInitReturnsNoOp(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	logger := Get()
	_, isNoOp := logger.(NoOpLogger)
	require.True(t, isNoOp)

	outcome, err := logger.Info(context.Background(), "bookings.ops.heartbeat.sent")
	require.NoError(t, err)
	assert.False(t, outcome.Published())
	assert.Empty(t, outcome.Envelope.EventID)
}

func TestInitSetsProcessLogger(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	pub := &stubPublisher{}
	logger, err := Init(context.Background(), testExplicitConfig(), testDeps(pub))
	require.NoError(t, err)

	assert.Same(t, logger, Get())

	outcome, err := Get().Info(context.Background(), "bookings.ops.heartbeat.sent")
	require.NoError(t, err)
	assert.True(t, outcome.Published())
	assert.Len(t, pub.published(), 1)
}

func TestInitReplacesAndClosesPrevious(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := &stubPublisher{}
	_, err := Init(context.Background(), testExplicitConfig(), testDeps(first))
	require.NoError(t, err)

	second := &stubPublisher{}
	replacement, err := Init(context.Background(), testExplicitConfig(), testDeps(second))
	require.NoError(t, err)

	assert.True(t, first.closed, "replaced logger must be closed")
	assert.Same(t, replacement, Get())
}

func TestInitFailureKeepsPreviousLogger(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	pub := &stubPublisher{}
	existing, err := Init(context.Background(), testExplicitConfig(), testDeps(pub))
	require.NoError(t, err)

	clearConfigEnv(t)
	_, err = Init(context.Background(), configpkg.Config{}, Dependencies{DisableMetrics: true})
	require.Error(t, err)

	assert.Same(t, existing, Get())
	assert.False(t, pub.closed)
}

func TestResetClosesAndDropsLogger(t *testing.T) {
	Reset()

	pub := &stubPublisher{}
	_, err := Init(context.Background(), testExplicitConfig(), testDeps(pub))
	require.NoError(t, err)

	Reset()

	assert.True(t, pub.closed)
	_, isNoOp := Get().(NoOpLogger)
	assert.True(t, isNoOp)
}

func TestNoOpLoggerAcceptsEveryCall(t *testing.T) {
	var logger Logger = NoOpLogger{}
	ctx := context.Background()

	for _, call := range []func() (Outcome, error){
		func() (Outcome, error) { return logger.Debug(ctx, "e") },
		func() (Outcome, error) { return logger.Info(ctx, "e", WithData(map[string]any{"a": 1})) },
		func() (Outcome, error) { return logger.Warning(ctx, "e", WithActor(nil)) },
		func() (Outcome, error) { return logger.Error(ctx, "e") },
	} {
		outcome, err := call()
		require.NoError(t, err)
		assert.False(t, outcome.Published())
	}
}
