// Package eventlog is a cross-service event-publishing client. It converts
// a leveled, structured log call into a canonical nine-field event envelope
// and publishes it to a message-bus topic, so every emitting service
// produces byte-for-byte schema-compatible records for downstream
// analytical ingestion.
//
// The envelope is a JSON object with exactly nine fields: event_id,
// correlation_id, service, event_type, level, environment, created_at,
// actor, and data. The actor and data fields are always JSON-encoded
// strings (double-encoded), never embedded raw structures; downstream
// ingestion depends on that invariant.
//
// Publishing is fail-open: a transport failure is logged, counted, and
// swallowed, never propagated to the caller. Business logic proceeds
// identically whether or not a publish succeeded; a failed publish is
// visible only as an empty MessageID on the returned Outcome and in
// operational diagnostics. The one way a logging call can fail its caller
// is a SerializationError for actor/data values the JSON codec cannot
// encode.
//
// Configuration resolves once at initialization, with precedence explicit >
// environment > default, and missing required fields reported together in a
// single ConfigurationError. The environment variable names (LOG_GCP_PROJECT,
// LOG_TOPIC, LOG_ENVIRONMENT, LOG_SERVICE_NAME, LOG_GCP_CREDENTIALS) are a
// stable contract shared across all language bindings.
//
// # Transports
//
// The transport is an external collaborator selected by Config.PubSubSystem
// and built through the transport registry:
//   - channel: in-memory Go channels (default; tests and local development)
//   - kafka: Apache Kafka
//   - rabbitmq: AMQP durable queues
//   - nats / nats-jetstream: NATS Core and JetStream
//   - http: POST per event to a collector endpoint
//   - file: append-only JSON-lines file
//   - sqlite / postgres: durable table sinks in warehouse shape
//   - sns: AWS SNS
//
// Import the transport packages you need (most register on import; the
// rest expose Register), or import transport/transports for the full
// matrix.
//
// # Usage
//
// Explicit instances are preferred: create an EventLogger with New and
// thread it through application context. Where a global accessor is wanted
// for ergonomics, Init installs a process-wide instance and Get returns it;
// before Init, Get returns a no-op logger that satisfies the full contract
// with no validation and no I/O, so call sites never need a nil check.
package eventlog
