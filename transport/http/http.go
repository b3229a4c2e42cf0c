// Package http provides an HTTP transport for eventlog. Each envelope is
// POSTed to the configured base URL with the topic appended as the path.
package http

import (
	"context"
	"errors"
	nethttp "net/http"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-http/v2/pkg/http"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/bookable/eventlog/transport"
)

// TransportName is the name used to register this transport.
const TransportName = "http"

// PublisherFactory allows overriding the publisher creation for testing.
var PublisherFactory = func(config http.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	return http.NewPublisher(config, logger)
}

func init() {
	transport.RegisterWithCapabilities(TransportName, Build, transport.HTTPCapabilities)
}

// Build creates a new HTTP transport.
func Build(ctx context.Context, cfg transport.Config, logger watermill.LoggerAdapter) (transport.Transport, error) {
	publisherURL := cfg.GetHTTPPublisherURL()
	if publisherURL == "" {
		return transport.Transport{}, errors.New("http: publisher URL is required")
	}

	publisher, err := PublisherFactory(
		http.PublisherConfig{
			MarshalMessageFunc: func(topic string, msg *message.Message) (*nethttp.Request, error) {
				return http.DefaultMarshalMessageFunc(publisherURL+topic, msg)
			},
		},
		logger,
	)
	if err != nil {
		return transport.Transport{}, err
	}

	return transport.Transport{Publisher: publisher}, nil
}

// Capabilities returns the capabilities of this transport.
func Capabilities() transport.Capabilities {
	return transport.HTTPCapabilities
}
