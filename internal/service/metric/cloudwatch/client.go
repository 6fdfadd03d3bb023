package cloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/pkg/errors"
)

// DefaultRegion is where AWS publishes the billing metrics.
const DefaultRegion = "us-east-1"

// ClientConfig is the configuration used to create a CloudWatch client.
type ClientConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// NewClient returns a new CloudWatch client. Static credentials are only
// used when both keys are set, otherwise the default AWS credential chain
// will be used.
func NewClient(ctx context.Context, cfg ClientConfig) (*awscloudwatch.Client, error) {
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
		opts = append(opts, config.WithCredentialsProvider(creds))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load AWS configuration")
	}

	return awscloudwatch.NewFromConfig(awsCfg), nil
}
