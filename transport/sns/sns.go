// Package sns provides an AWS SNS transport for eventlog.
//
// Credentials follow the AWS default chain (ambient/workload credentials).
// When the configured credentials reference names a shared credentials
// file, that file is used instead; the reference value "ambient" explicitly
// opts into the default chain.
package sns

import (
	"context"
	"errors"
	"net/url"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-aws/sns"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	amazonsns "github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/bookable/eventlog/transport"
)

// TransportName is the name used to register this transport.
const TransportName = "sns"

// AmbientCredentials is the credentials reference value that selects the
// AWS default credential chain instead of a credentials file.
const AmbientCredentials = "ambient"

// ConfigLoader allows overriding the AWS config loader for testing.
var ConfigLoader = awsconfig.LoadDefaultConfig

// TopicResolverFactory allows overriding the topic resolver creation for testing.
var TopicResolverFactory = sns.NewGenerateArnTopicResolver

// PublisherFactory allows overriding the publisher creation for testing.
var PublisherFactory = func(cfg sns.PublisherConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	return sns.NewPublisher(cfg, logger)
}

// Register registers the SNS transport with the default registry. Call it
// from an init() function in an importing package, or explicitly before
// using the transport.
func Register() {
	transport.RegisterWithCapabilities(TransportName, Build, transport.SNSCapabilities)
}

// Build creates a new AWS SNS transport.
func Build(ctx context.Context, cfg transport.Config, logger watermill.LoggerAdapter) (transport.Transport, error) {
	region := cfg.GetAWSRegion()
	if region == "" {
		return transport.Transport{}, errors.New("sns: region is required")
	}
	accountID := cfg.GetAWSAccountID()
	if accountID == "" {
		return transport.Transport{}, errors.New("sns: account ID is required")
	}

	awsCfg, err := loadAWSConfig(ctx, cfg, region)
	if err != nil {
		logger.Error("failed to load AWS config", err, watermill.LogFields{"region": region})
		return transport.Transport{}, err
	}

	topicResolver, err := TopicResolverFactory(accountID, region)
	if err != nil {
		return transport.Transport{}, err
	}

	publisherConfig := sns.PublisherConfig{
		AWSConfig:     awsCfg,
		TopicResolver: topicResolver,
		Marshaler:     sns.DefaultMarshalerUnmarshaler{},
	}

	if endpoint := cfg.GetAWSEndpoint(); endpoint != "" {
		if _, err := url.Parse(endpoint); err != nil {
			return transport.Transport{}, err
		}
		publisherConfig.OptFns = []func(*amazonsns.Options){
			func(o *amazonsns.Options) {
				o.BaseEndpoint = aws.String(endpoint)
			},
		}
	}

	publisher, err := PublisherFactory(publisherConfig, logger)
	if err != nil {
		return transport.Transport{}, err
	}

	return transport.Transport{Publisher: publisher}, nil
}

func loadAWSConfig(ctx context.Context, cfg transport.Config, region string) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}

	if ref := cfg.GetCredentialsRef(); ref != "" && ref != AmbientCredentials {
		if _, err := os.Stat(ref); err == nil {
			opts = append(opts, awsconfig.WithSharedCredentialsFiles([]string{ref}))
		}
	}

	return ConfigLoader(ctx, opts...)
}

// Capabilities returns the capabilities of this transport.
func Capabilities() transport.Capabilities {
	return transport.SNSCapabilities
}
