// Package jetstream provides a NATS JetStream transport for eventlog.
// Events are published to an existing stream; stream provisioning is an
// operational concern, not the client's.
package jetstream

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/nats-io/nats.go"

	"github.com/bookable/eventlog/transport"
)

// TransportName is the name used to register this transport.
const TransportName = "nats-jetstream"

// MetadataHeaderPrefix namespaces message metadata in NATS headers.
const MetadataHeaderPrefix = "Eventlog-"

// AmbientCredentials is the credentials reference value that selects the
// process's ambient NATS context instead of a credentials file.
const AmbientCredentials = "ambient"

// ConnectFactory allows overriding the NATS connection creation for testing.
var ConnectFactory = func(url string, opts ...nats.Option) (*nats.Conn, error) {
	return nats.Connect(url, opts...)
}

// Register registers the JetStream transport with the default registry.
// Call it from an init() function in an importing package, or explicitly
// before using the transport.
func Register() {
	transport.RegisterWithCapabilities(TransportName, Build, transport.JetStreamCapabilities)
}

// Build creates a new JetStream transport.
func Build(ctx context.Context, cfg transport.Config, logger watermill.LoggerAdapter) (transport.Transport, error) {
	url := cfg.GetNATSURL()
	if url == "" {
		return transport.Transport{}, errors.New("nats-jetstream: URL is required")
	}

	opts := []nats.Option{nats.Name(cfg.GetProjectID())}
	if ref := cfg.GetCredentialsRef(); ref != "" && ref != AmbientCredentials {
		opts = append(opts, nats.UserCredentials(ref))
	}

	nc, err := ConnectFactory(url, opts...)
	if err != nil {
		return transport.Transport{}, err
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return transport.Transport{}, err
	}

	return transport.Transport{
		Publisher: &Publisher{nc: nc, js: js, logger: logger},
	}, nil
}

// Publisher publishes watermill messages onto a JetStream subject.
type Publisher struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	logger watermill.LoggerAdapter
}

// Publish sends each message to the topic subject and waits for the stream
// acknowledgment.
func (p *Publisher) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		m := nats.NewMsg(topic)
		m.Data = msg.Payload
		m.Header.Set(MetadataHeaderPrefix+"Message-Uuid", msg.UUID)
		for key, value := range msg.Metadata {
			m.Header.Set(MetadataHeaderPrefix+key, value)
		}

		ack, err := p.js.PublishMsg(m)
		if err != nil {
			return err
		}
		p.logger.Trace("JetStream publish acknowledged", watermill.LogFields{
			"subject":  topic,
			"stream":   ack.Stream,
			"sequence": ack.Sequence,
		})
	}
	return nil
}

// Close drains the underlying connection.
func (p *Publisher) Close() error {
	p.nc.Close()
	return nil
}

// Capabilities returns the capabilities of this transport.
func Capabilities() transport.Capabilities {
	return transport.JetStreamCapabilities
}
