package cloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/pkg/errors"

	"github.com/slok/billingmetrics/internal/model"
	"github.com/slok/billingmetrics/internal/service/metric"
)

const (
	billingNamespace  = "AWS/Billing"
	billingMetricName = "EstimatedCharges"
	billingPeriodSecs = 60

	currencyDimension    = "Currency"
	serviceNameDimension = "ServiceName"

	// DefaultCurrency is the currency used when none is set.
	DefaultCurrency = "USD"
)

// CloudWatchAPI is the part of the CloudWatch client used by the gatherer.
type CloudWatchAPI interface {
	GetMetricStatistics(ctx context.Context, params *awscloudwatch.GetMetricStatisticsInput, optFns ...func(*awscloudwatch.Options)) (*awscloudwatch.GetMetricStatisticsOutput, error)
}

// ConfigGatherer is the configuration of the CloudWatch gatherer.
type ConfigGatherer struct {
	// Client is the CloudWatch client.
	Client CloudWatchAPI
	// Currency is the currency dimension of the estimated charges.
	Currency string
}

func (c *ConfigGatherer) defaults() error {
	if c.Client == nil {
		return errors.New("cloudwatch client is required")
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	return nil
}

type gatherer struct {
	cli CloudWatchAPI
	cfg ConfigGatherer
}

// NewGatherer returns a new billing metrics gatherer for AWS CloudWatch.
func NewGatherer(cfg ConfigGatherer) (metric.Gatherer, error) {
	if err := cfg.defaults(); err != nil {
		return nil, err
	}

	return &gatherer{
		cli: cfg.Client,
		cfg: cfg,
	}, nil
}

func (g *gatherer) GatherServiceCharges(ctx context.Context, service string, tw model.TimeWindow) ([]model.Sample, error) {
	in := &awscloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(billingNamespace),
		MetricName: aws.String(billingMetricName),
		StartTime:  aws.Time(tw.Start),
		EndTime:    aws.Time(tw.End),
		Period:     aws.Int32(billingPeriodSecs),
		Statistics: []types.Statistic{types.StatisticMaximum},
		Dimensions: []types.Dimension{
			{Name: aws.String(currencyDimension), Value: aws.String(g.cfg.Currency)},
			{Name: aws.String(serviceNameDimension), Value: aws.String(service)},
		},
	}

	out, err := g.cli.GetMetricStatistics(ctx, in)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting %s metric statistics", billingMetricName)
	}

	return g.transformDatapoints(out.Datapoints), nil
}

// transformDatapoints will ignore the datapoints that lack the value or the timestamp.
func (g *gatherer) transformDatapoints(dps []types.Datapoint) []model.Sample {
	samples := make([]model.Sample, 0, len(dps))
	for _, dp := range dps {
		if dp.Maximum == nil || dp.Timestamp == nil {
			continue
		}

		samples = append(samples, model.Sample{
			Value: *dp.Maximum,
			TS:    *dp.Timestamp,
		})
	}

	return samples
}
