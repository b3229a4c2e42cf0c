package runtime

import (
	"context"
	"log/slog"
	"os"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"

	configpkg "github.com/bookable/eventlog/internal/runtime/config"
	envelopepkg "github.com/bookable/eventlog/internal/runtime/envelope"
	errspkg "github.com/bookable/eventlog/internal/runtime/errors"
	loggingpkg "github.com/bookable/eventlog/internal/runtime/logging"
	transportpkg "github.com/bookable/eventlog/transport"

	// The channel transport is the configuration default; registering it
	// here guarantees a zero-infrastructure fallback is always available.
	_ "github.com/bookable/eventlog/transport/channel"
)

// Dependencies carries optional collaborators for EventLogger construction.
// Zero values select the defaults: slog JSON diagnostics to stderr, a
// transport built from config via the registry, and the default Prometheus
// registerer.
type Dependencies struct {
	// Logger receives diagnostics, including swallowed publish failures.
	Logger loggingpkg.ServiceLogger
	// Publisher, when set, bypasses transport construction entirely. Tests
	// and applications that already own a publisher inject it here.
	Publisher message.Publisher
	// Registerer receives the publish metrics collectors.
	Registerer prometheus.Registerer
	// DisableMetrics skips Prometheus registration.
	DisableMetrics bool
}

// EventLogger converts leveled log calls into canonical envelopes and
// publishes them. Construction fails fast: a caller holding an EventLogger
// has a resolved Config and a live transport. Instances are safe for
// concurrent use; each call builds its own envelope and the config is
// read-only.
type EventLogger struct {
	cfg     *configpkg.Config
	gateway *Gateway
	logger  loggingpkg.ServiceLogger
}

// New resolves configuration, constructs the transport, and returns a live
// EventLogger. Missing required configuration and transport construction
// failures both surface as ConfigurationError.
func New(ctx context.Context, explicit configpkg.Config, deps Dependencies) (*EventLogger, error) {
	cfg, err := configpkg.Resolve(explicit)
	if err != nil {
		return nil, err
	}

	log := deps.Logger
	if log == nil {
		log = loggingpkg.NewSlogServiceLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}
	log = log.With(loggingpkg.LogFields{
		"service":     cfg.ServiceName,
		"environment": cfg.Environment,
	})

	publisher := deps.Publisher
	if publisher == nil {
		built, err := transportpkg.Build(ctx, cfg, loggingpkg.NewWatermillAdapter(log))
		if err != nil {
			return nil, errspkg.NewConfigurationError(err)
		}
		publisher = built.Publisher
	}

	var metrics *PublishMetrics
	if !deps.DisableMetrics {
		metrics = NewPublishMetrics(deps.Registerer)
		if err := metrics.Register(); err != nil {
			return nil, errspkg.NewConfigurationError(err)
		}
	}

	gateway, err := NewGateway(publisher, cfg.TopicName, log, metrics)
	if err != nil {
		return nil, errspkg.NewConfigurationError(err)
	}

	log.Debug("event logger initialized", loggingpkg.LogFields{
		"topic":     cfg.TopicName,
		"transport": cfg.PubSubSystem,
	})

	return &EventLogger{
		cfg:     cfg,
		gateway: gateway,
		logger:  log,
	}, nil
}

// Config returns the resolved, immutable configuration.
func (l *EventLogger) Config() configpkg.Config { return *l.cfg }

// Close releases the transport.
func (l *EventLogger) Close() error { return l.gateway.Close() }

// Log builds an envelope for the given level and event type and publishes
// it. The returned error is a SerializationError for non-encodable
// actor/data, or ErrInvalidLevel for a level outside the enumeration;
// transport failures are swallowed and show up only as an empty MessageID.
func (l *EventLogger) Log(ctx context.Context, level envelopepkg.Level, eventType string, opts ...Option) (Outcome, error) {
	if !level.Valid() {
		return Outcome{}, errspkg.ErrInvalidLevel
	}

	fields := envelopepkg.Fields{
		EventType: eventType,
		Level:     level,
	}
	for _, opt := range opts {
		opt(&fields)
	}
	if fields.CorrelationID == "" {
		// Inside a traced request the trace ID doubles as the correlation
		// ID; Build generates a fresh UUID otherwise.
		fields.CorrelationID = CorrelationFromContext(ctx)
	}

	env, err := envelopepkg.Build(l.cfg, fields)
	if err != nil {
		return Outcome{}, err
	}

	l.logger.Info("logging event", loggingpkg.LogFields{
		"event_type": env.EventType,
		"level":      env.Level,
		"event_id":   env.EventID,
	})

	return l.gateway.Publish(ctx, env), nil
}

// Debug logs an event at the debug level.
func (l *EventLogger) Debug(ctx context.Context, eventType string, opts ...Option) (Outcome, error) {
	return l.Log(ctx, envelopepkg.LevelDebug, eventType, opts...)
}

// Info logs an event at the info level.
func (l *EventLogger) Info(ctx context.Context, eventType string, opts ...Option) (Outcome, error) {
	return l.Log(ctx, envelopepkg.LevelInfo, eventType, opts...)
}

// Warning logs an event at the warning level.
func (l *EventLogger) Warning(ctx context.Context, eventType string, opts ...Option) (Outcome, error) {
	return l.Log(ctx, envelopepkg.LevelWarning, eventType, opts...)
}

// Error logs an event at the error level.
func (l *EventLogger) Error(ctx context.Context, eventType string, opts ...Option) (Outcome, error) {
	return l.Log(ctx, envelopepkg.LevelError, eventType, opts...)
}
