package http

import (
	"context"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-http/v2/pkg/http"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookable/eventlog/transport"
)

type mockConfig struct {
	publisherURL string
}

func (m mockConfig) GetPubSubSystem() string     { return TransportName }
func (m mockConfig) GetProjectID() string        { return "proj" }
func (m mockConfig) GetCredentialsRef() string   { return "ambient" }
func (m mockConfig) GetKafkaBrokers() []string   { return nil }
func (m mockConfig) GetRabbitMQURL() string      { return "" }
func (m mockConfig) GetNATSURL() string          { return "" }
func (m mockConfig) GetHTTPPublisherURL() string { return m.publisherURL }
func (m mockConfig) GetFilePath() string         { return "" }
func (m mockConfig) GetSQLiteFile() string       { return "" }
func (m mockConfig) GetPostgresURL() string      { return "" }
func (m mockConfig) GetAWSRegion() string        { return "" }
func (m mockConfig) GetAWSAccountID() string     { return "" }
func (m mockConfig) GetAWSEndpoint() string      { return "" }

type nopPublisher struct{}

func (nopPublisher) Publish(topic string, messages ...*message.Message) error { return nil }
func (nopPublisher) Close() error                                             { return nil }

func TestInitRegistersHTTPTransport(t *testing.T) {
	assert.True(t, transport.DefaultRegistry.Has(TransportName))
}

func TestBuildRequiresPublisherURL(t *testing.T) {
	_, err := Build(context.Background(), mockConfig{}, watermill.NopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publisher URL is required")
}

func TestBuildMarshalAppendsTopicToURL(t *testing.T) {
	original := PublisherFactory
	defer func() { PublisherFactory = original }()

	var gotConfig http.PublisherConfig
	PublisherFactory = func(cfg http.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
		gotConfig = cfg
		return nopPublisher{}, nil
	}

	_, err := Build(context.Background(), mockConfig{publisherURL: "https://collector.internal/topics/"}, watermill.NopLogger{})
	require.NoError(t, err)
	require.NotNil(t, gotConfig.MarshalMessageFunc)

	msg := message.NewMessage("m-1", []byte(`{"a":1}`))
	req, err := gotConfig.MarshalMessageFunc("events", msg)
	require.NoError(t, err)

	assert.Equal(t, "https://collector.internal/topics/events", req.URL.String())
	assert.Equal(t, "POST", req.Method)
}
