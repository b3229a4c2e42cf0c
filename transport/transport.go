// Package transport defines the publish capability eventlog depends on and
// a registry of named backends. Each backend lives in its own sub-package
// and registers itself, so applications pull in only the broker drivers
// they actually use.
//
// Transports are external collaborators: connection management, delivery
// guarantees, and retry policies are theirs, not eventlog's. The client only
// requires that a publisher be safe for concurrent use by multiple in-flight
// publish calls.
package transport

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Transport wraps the publisher produced by a builder. Eventlog is a pure
// producer; there is no subscriber side.
type Transport struct {
	Publisher message.Publisher
}

// Builder is the function signature for creating a transport from config.
// Each transport package provides a Builder that can be registered.
type Builder func(ctx context.Context, cfg Config, logger watermill.LoggerAdapter) (Transport, error)

// Config provides the configuration values needed by transports. The
// interface is narrow so transports access only the keys they need without
// depending on the full config package.
type Config interface {
	// GetPubSubSystem returns the transport type name.
	GetPubSubSystem() string

	// GetProjectID returns the messaging project/namespace identifier.
	GetProjectID() string

	// GetCredentialsRef returns the credential reference; transports decide
	// whether it names a credentials file or an ambient-credentials marker.
	GetCredentialsRef() string

	// Kafka
	GetKafkaBrokers() []string

	// RabbitMQ
	GetRabbitMQURL() string

	// NATS (core and JetStream)
	GetNATSURL() string

	// HTTP
	GetHTTPPublisherURL() string

	// File
	GetFilePath() string

	// SQLite
	GetSQLiteFile() string

	// PostgreSQL
	GetPostgresURL() string

	// AWS SNS
	GetAWSRegion() string
	GetAWSAccountID() string
	GetAWSEndpoint() string
}
