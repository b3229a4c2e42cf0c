package runtime

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	envelopepkg "github.com/bookable/eventlog/internal/runtime/envelope"
	errspkg "github.com/bookable/eventlog/internal/runtime/errors"
	idspkg "github.com/bookable/eventlog/internal/runtime/ids"
	"github.com/bookable/eventlog/internal/runtime/jsoncodec"
	loggingpkg "github.com/bookable/eventlog/internal/runtime/logging"
)

// Message metadata keys stamped on every published message. Consumers that
// route or filter before decoding the payload read these.
const (
	MetadataKeyEventType     = "event_type"
	MetadataKeyLevel         = "level"
	MetadataKeyCorrelationID = "correlation_id"
)

// Gateway hands envelopes to the transport. It owns the fail-open rule:
// logging must never crash or block the business operation that triggered
// it, so every transport failure is logged, counted, and swallowed. Retry
// and backoff, if any, belong to the transport.
type Gateway struct {
	publisher message.Publisher
	topic     string
	logger    loggingpkg.ServiceLogger
	metrics   *PublishMetrics
}

// NewGateway wires a gateway around an already-constructed publisher.
func NewGateway(publisher message.Publisher, topic string, logger loggingpkg.ServiceLogger, metrics *PublishMetrics) (*Gateway, error) {
	if publisher == nil {
		return nil, errspkg.ErrPublisherRequired
	}
	if topic == "" {
		return nil, errspkg.ErrTopicRequired
	}
	if logger == nil {
		logger = loggingpkg.NewNopServiceLogger()
	}
	return &Gateway{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// Publish serializes the envelope and invokes the transport. It never
// returns an error: a failed publish yields an Outcome with an empty
// MessageID and a diagnostic log entry.
func (g *Gateway) Publish(ctx context.Context, env envelopepkg.Envelope) Outcome {
	payload, err := jsoncodec.Marshal(env)
	if err != nil {
		// The envelope is a fixed struct of strings; this cannot happen
		// with a healthy codec. Treat it like a transport failure rather
		// than crashing the caller.
		g.logger.Error("failed to serialize envelope", err, loggingpkg.LogFields{
			"event_id":   env.EventID,
			"event_type": env.EventType,
		})
		return Outcome{Envelope: env}
	}

	msg := message.NewMessage(idspkg.NewULID(), payload)
	msg.Metadata.Set(MetadataKeyEventType, env.EventType)
	msg.Metadata.Set(MetadataKeyLevel, env.Level)
	msg.Metadata.Set(MetadataKeyCorrelationID, env.CorrelationID)
	if ctx != nil {
		msg.SetContext(ctx)
	}

	start := time.Now()
	err = g.publisher.Publish(g.topic, msg)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		g.logger.Error("failed to publish event", err, loggingpkg.LogFields{
			"topic":      g.topic,
			"event_id":   env.EventID,
			"event_type": env.EventType,
			"level":      env.Level,
		})
		if g.metrics != nil {
			g.metrics.ObserveFailure(g.topic, env.Level, elapsed)
		}
		return Outcome{Envelope: env}
	}

	g.logger.Debug("published event", loggingpkg.LogFields{
		"topic":      g.topic,
		"event_id":   env.EventID,
		"message_id": msg.UUID,
	})
	if g.metrics != nil {
		g.metrics.ObservePublished(g.topic, env.Level, elapsed)
	}
	return Outcome{Envelope: env, MessageID: msg.UUID}
}

// Close releases the underlying publisher.
func (g *Gateway) Close() error {
	return g.publisher.Close()
}
