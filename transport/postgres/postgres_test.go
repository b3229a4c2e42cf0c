package postgres

import (
	"context"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookable/eventlog/transport"
)

type mockConfig struct {
	postgresURL string
}

func (m mockConfig) GetPubSubSystem() string     { return TransportName }
func (m mockConfig) GetProjectID() string        { return "proj" }
func (m mockConfig) GetCredentialsRef() string   { return "ambient" }
func (m mockConfig) GetKafkaBrokers() []string   { return nil }
func (m mockConfig) GetRabbitMQURL() string      { return "" }
func (m mockConfig) GetNATSURL() string          { return "" }
func (m mockConfig) GetHTTPPublisherURL() string { return "" }
func (m mockConfig) GetFilePath() string         { return "" }
func (m mockConfig) GetSQLiteFile() string       { return "" }
func (m mockConfig) GetPostgresURL() string      { return m.postgresURL }
func (m mockConfig) GetAWSRegion() string        { return "" }
func (m mockConfig) GetAWSAccountID() string     { return "" }
func (m mockConfig) GetAWSEndpoint() string      { return "" }

func TestInitRegistersPostgresTransport(t *testing.T) {
	assert.True(t, transport.DefaultRegistry.Has(TransportName))

	caps := transport.GetCapabilities(TransportName)
	assert.Equal(t, "postgres", caps.Name)
	assert.True(t, caps.Durable)
	assert.True(t, caps.RequiresBroker)
}

func TestBuildRequiresURL(t *testing.T) {
	_, err := Build(context.Background(), mockConfig{}, watermill.NopLogger{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL is required")
}

func TestCapabilities(t *testing.T) {
	caps := Capabilities()
	assert.Equal(t, transport.PostgresCapabilities, caps)
	assert.Equal(t, "postgres", caps.Name)
}

func TestTransportName(t *testing.T) {
	assert.Equal(t, "postgres", TransportName)
}
