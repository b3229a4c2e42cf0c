package jetstream

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookable/eventlog/transport"
)

type mockConfig struct {
	natsURL        string
	credentialsRef string
}

func (m mockConfig) GetPubSubSystem() string     { return TransportName }
func (m mockConfig) GetProjectID() string        { return "proj" }
func (m mockConfig) GetCredentialsRef() string   { return m.credentialsRef }
func (m mockConfig) GetKafkaBrokers() []string   { return nil }
func (m mockConfig) GetRabbitMQURL() string      { return "" }
func (m mockConfig) GetNATSURL() string          { return m.natsURL }
func (m mockConfig) GetHTTPPublisherURL() string { return "" }
func (m mockConfig) GetFilePath() string         { return "" }
func (m mockConfig) GetSQLiteFile() string       { return "" }
func (m mockConfig) GetPostgresURL() string      { return "" }
func (m mockConfig) GetAWSRegion() string        { return "" }
func (m mockConfig) GetAWSAccountID() string     { return "" }
func (m mockConfig) GetAWSEndpoint() string      { return "" }

// captureConnect records the connect arguments and fails, keeping Build away
// from a real broker.
func captureConnect(gotURL *string, gotOpts *[]nats.Option) func(string, ...nats.Option) (*nats.Conn, error) {
	return func(url string, opts ...nats.Option) (*nats.Conn, error) {
		*gotURL = url
		*gotOpts = opts
		return nil, errors.New("connect intercepted")
	}
}

func applyOptions(t *testing.T, opts []nats.Option) nats.Options {
	t.Helper()
	applied := nats.GetDefaultOptions()
	for _, opt := range opts {
		require.NoError(t, opt(&applied))
	}
	return applied
}

func TestRegisterAddsJetStreamTransport(t *testing.T) {
	Register()
	assert.True(t, transport.DefaultRegistry.Has(TransportName))

	caps := transport.GetCapabilities(TransportName)
	assert.Equal(t, "nats-jetstream", caps.Name)
	assert.True(t, caps.Durable)
	assert.True(t, caps.RequiresBroker)
}

func TestBuildRequiresURL(t *testing.T) {
	_, err := Build(context.Background(), mockConfig{}, watermill.NopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL is required")
}

func TestBuildConnectOptions(t *testing.T) {
	original := ConnectFactory
	defer func() { ConnectFactory = original }()

	t.Run("ambient credentials connect with only the client name", func(t *testing.T) {
		var gotURL string
		var gotOpts []nats.Option
		ConnectFactory = captureConnect(&gotURL, &gotOpts)

		_, err := Build(context.Background(), mockConfig{
			natsURL:        "nats://localhost:4222",
			credentialsRef: AmbientCredentials,
		}, watermill.NopLogger{})
		require.Error(t, err)

		assert.Equal(t, "nats://localhost:4222", gotURL)
		applied := applyOptions(t, gotOpts)
		assert.Equal(t, "proj", applied.Name)
		assert.Nil(t, applied.UserJWT, "ambient credentials must not set a credentials file")
	})

	t.Run("file reference wires user credentials", func(t *testing.T) {
		var gotURL string
		var gotOpts []nats.Option
		ConnectFactory = captureConnect(&gotURL, &gotOpts)

		_, err := Build(context.Background(), mockConfig{
			natsURL:        "nats://localhost:4222",
			credentialsRef: "/etc/nats/service.creds",
		}, watermill.NopLogger{})
		require.Error(t, err)

		applied := applyOptions(t, gotOpts)
		assert.NotNil(t, applied.UserJWT)
		assert.NotNil(t, applied.SignatureCB)
	})
}

func TestBuildConnectFactoryError(t *testing.T) {
	original := ConnectFactory
	defer func() { ConnectFactory = original }()

	ConnectFactory = func(url string, opts ...nats.Option) (*nats.Conn, error) {
		return nil, errors.New("no route to broker")
	}

	_, err := Build(context.Background(), mockConfig{natsURL: "nats://localhost:4222"}, watermill.NopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route to broker")
}

func TestCapabilities(t *testing.T) {
	caps := Capabilities()
	assert.Equal(t, transport.JetStreamCapabilities, caps)
	assert.Equal(t, "nats-jetstream", caps.Name)
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "Eventlog-", MetadataHeaderPrefix)
	assert.Equal(t, "ambient", AmbientCredentials)
}
