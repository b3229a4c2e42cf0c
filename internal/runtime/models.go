package runtime

import (
	"context"

	envelopepkg "github.com/bookable/eventlog/internal/runtime/envelope"
)

// Outcome is the result of one logging call: the envelope that was built,
// plus the transport message ID when the publish succeeded. An empty
// MessageID means the publish failed and was swallowed; the caller's
// business logic proceeds identically either way.
type Outcome struct {
	Envelope  envelopepkg.Envelope
	MessageID string
}

// Published reports whether the transport accepted the envelope.
func (o Outcome) Published() bool { return o.MessageID != "" }

// Logger is the facade contract shared by the live EventLogger and the
// no-op logger returned before initialization. The returned error is either
// a SerializationError or ErrInvalidLevel; transport failures never surface
// here.
type Logger interface {
	Log(ctx context.Context, level envelopepkg.Level, eventType string, opts ...Option) (Outcome, error)
	Debug(ctx context.Context, eventType string, opts ...Option) (Outcome, error)
	Info(ctx context.Context, eventType string, opts ...Option) (Outcome, error)
	Warning(ctx context.Context, eventType string, opts ...Option) (Outcome, error)
	Error(ctx context.Context, eventType string, opts ...Option) (Outcome, error)
}

// Option customizes a single logging call.
type Option func(*envelopepkg.Fields)

// WithData attaches the event payload. Any JSON-encodable value is accepted;
// it is serialized into the envelope's data field.
func WithData(v any) Option {
	return func(f *envelopepkg.Fields) { f.Data = v }
}

// WithActor attaches metadata describing who or what triggered the event.
func WithActor(v any) Option {
	return func(f *envelopepkg.Fields) { f.Actor = v }
}

// WithCorrelationID groups this envelope with others belonging to the same
// logical operation. Omitted, a fresh UUID is generated per call.
func WithCorrelationID(id string) Option {
	return func(f *envelopepkg.Fields) { f.CorrelationID = id }
}

// WithService overrides the configured service name for this call.
func WithService(service string) Option {
	return func(f *envelopepkg.Fields) { f.Service = service }
}
