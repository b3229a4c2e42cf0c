package transport

// Capabilities describes publish-relevant properties of a transport backend.
// Operators use this to judge what an emitted event stream can rely on.
type Capabilities struct {
	// Name is the registered name of the transport.
	Name string

	// Durable indicates published events survive a process restart
	// (broker- or disk-backed, as opposed to in-memory).
	Durable bool

	// SupportsOrdering indicates events on one topic keep publish order.
	// Consumers of unordered transports must rely on created_at and
	// correlation_id instead of arrival order.
	SupportsOrdering bool

	// RequiresBroker indicates the transport needs external infrastructure
	// to be reachable at construction time.
	RequiresBroker bool

	// SupportsBatching indicates the transport can batch multiple messages
	// per publish call.
	SupportsBatching bool
}

// Predefined capability sets for the built-in transports.
var (
	// ChannelCapabilities for the in-memory Go channel transport.
	ChannelCapabilities = Capabilities{
		Name:             "channel",
		SupportsOrdering: true,
	}

	// KafkaCapabilities for the Apache Kafka transport.
	KafkaCapabilities = Capabilities{
		Name:             "kafka",
		Durable:          true,
		SupportsOrdering: true,
		RequiresBroker:   true,
		SupportsBatching: true,
	}

	// RabbitMQCapabilities for the RabbitMQ/AMQP transport.
	RabbitMQCapabilities = Capabilities{
		Name:             "rabbitmq",
		Durable:          true,
		SupportsOrdering: true,
		RequiresBroker:   true,
	}

	// NATSCapabilities for the NATS Core transport.
	NATSCapabilities = Capabilities{
		Name:           "nats",
		RequiresBroker: true,
	}

	// JetStreamCapabilities for the NATS JetStream transport.
	JetStreamCapabilities = Capabilities{
		Name:             "nats-jetstream",
		Durable:          true,
		SupportsOrdering: true,
		RequiresBroker:   true,
	}

	// HTTPCapabilities for the HTTP transport.
	HTTPCapabilities = Capabilities{
		Name:           "http",
		RequiresBroker: true,
	}

	// FileCapabilities for the append-only file transport.
	FileCapabilities = Capabilities{
		Name:             "file",
		Durable:          true,
		SupportsOrdering: true,
	}

	// SQLiteCapabilities for the SQLite sink transport.
	SQLiteCapabilities = Capabilities{
		Name:             "sqlite",
		Durable:          true,
		SupportsOrdering: true,
	}

	// PostgresCapabilities for the PostgreSQL sink transport.
	PostgresCapabilities = Capabilities{
		Name:             "postgres",
		Durable:          true,
		SupportsOrdering: true,
		RequiresBroker:   true,
	}

	// SNSCapabilities for the AWS SNS transport.
	SNSCapabilities = Capabilities{
		Name:             "sns",
		Durable:          true,
		RequiresBroker:   true,
		SupportsBatching: true,
	}
)
