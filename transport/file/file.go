// Package file provides an append-only file transport for eventlog. Each
// published message becomes one JSON line, which local tooling can tail or
// replay into a real broker later.
package file

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/bookable/eventlog/transport"
)

// TransportName is the name used to register this transport.
const TransportName = "file"

// DefaultFilePath is used when no file is configured.
const DefaultFilePath = "events.log"

// PublisherFactory allows overriding the publisher creation for testing.
var PublisherFactory = func(filePath string, logger watermill.LoggerAdapter) (message.Publisher, error) {
	return &Publisher{filePath: filePath, logger: logger}, nil
}

// Register registers the file transport with the default registry. Call it
// from an init() function in an importing package, or explicitly before
// using the transport.
func Register() {
	transport.RegisterWithCapabilities(TransportName, Build, transport.FileCapabilities)
}

// Build creates a new file transport.
func Build(ctx context.Context, cfg transport.Config, logger watermill.LoggerAdapter) (transport.Transport, error) {
	filePath := cfg.GetFilePath()
	if filePath == "" {
		filePath = DefaultFilePath
	}

	pub, err := PublisherFactory(filePath, logger)
	if err != nil {
		return transport.Transport{}, err
	}

	return transport.Transport{Publisher: pub}, nil
}

// storedMessage is the JSON structure for persisted messages.
type storedMessage struct {
	UUID     string            `json:"uuid"`
	Metadata map[string]string `json:"metadata"`
	Payload  []byte            `json:"payload"`
	Topic    string            `json:"topic"`
}

// Publisher appends messages to a file, one JSON object per line.
type Publisher struct {
	filePath string
	logger   watermill.LoggerAdapter
	mu       sync.Mutex
}

// Publish writes messages to the file.
func (p *Publisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, msg := range messages {
		sm := storedMessage{
			UUID:     msg.UUID,
			Metadata: msg.Metadata,
			Payload:  msg.Payload,
			Topic:    topic,
		}

		b, err := json.Marshal(sm)
		if err != nil {
			return err
		}

		if _, err := f.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op; the file is opened per publish.
func (p *Publisher) Close() error {
	return nil
}

// Capabilities returns the capabilities of this transport.
func Capabilities() transport.Capabilities {
	return transport.FileCapabilities
}
