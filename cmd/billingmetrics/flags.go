package main

import (
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/pkg/errors"
	"github.com/prometheus/common/version"

	"github.com/slok/billingmetrics/internal/runner"
	"github.com/slok/billingmetrics/internal/service/log"
	"github.com/slok/billingmetrics/internal/service/metric"
	"github.com/slok/billingmetrics/internal/service/metric/cloudwatch"
	"github.com/slok/billingmetrics/internal/service/output"
)

const (
	appName = "billingmetrics"
	appHelp = "Retrieves AWS estimated billing metrics and prints them as Graphite metrics."
)

type cmdFlags struct {
	scheme             string
	fetchAgeSeconds    int
	currency           string
	awsAccessKey       string
	awsSecretAccessKey string
	awsRegion          string
	queryTimeout       time.Duration
	outputFormat       string
	pushgatewayURL     string
	debug              bool
	logFormat          string
}

func newCmdFlags(args []string) (*cmdFlags, error) {
	f := &cmdFlags{}
	app := kingpin.New(appName, appHelp)
	app.Version(version.Print(appName))
	app.HelpFlag.Short('h')

	app.Flag("scheme", "Metric naming scheme, text to prepend to metric.").Short('s').Default(runner.DefaultScheme).StringVar(&f.scheme)
	app.Flag("fetch-age", "How long ago in seconds to fetch metrics for.").Short('f').Default("14400").IntVar(&f.fetchAgeSeconds)
	app.Flag("currency", "Currency of the estimated charges.").Default(cloudwatch.DefaultCurrency).StringVar(&f.currency)
	app.Flag("aws-access-key", "AWS access key, if not set the default AWS credential chain will be used.").Short('a').Envar("AWS_ACCESS_KEY_ID").StringVar(&f.awsAccessKey)
	app.Flag("aws-secret-access-key", "AWS secret access key, if not set the default AWS credential chain will be used.").Short('k').Envar("AWS_SECRET_ACCESS_KEY").StringVar(&f.awsSecretAccessKey)
	app.Flag("aws-region", "AWS region, billing metrics are only available on us-east-1.").Short('r').Default(cloudwatch.DefaultRegion).StringVar(&f.awsRegion)
	app.Flag("query-timeout", "The timeout of every billing query, 0 disables it.").Default("0s").DurationVar(&f.queryTimeout)
	app.Flag("output-format", "The format of the emitted metrics.").Default(string(output.FormatGraphite)).EnumVar(&f.outputFormat, string(output.FormatGraphite), string(output.FormatInfluxDB))
	app.Flag("pushgateway-url", "If set, the metrics of the run will be pushed to this Prometheus pushgateway.").StringVar(&f.pushgatewayURL)
	app.Flag("debug", "Enable debug logging.").BoolVar(&f.debug)
	app.Flag("log-format", "The format of the logs.").Default(string(log.FormatConsole)).EnumVar(&f.logFormat, string(log.FormatConsole), string(log.FormatJSON))

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func (c *cmdFlags) validate() error {
	if c.fetchAgeSeconds <= 0 {
		return errors.Wrapf(metric.ErrInvalidLookback, "invalid fetch age %d", c.fetchAgeSeconds)
	}
	if c.currency == "" {
		return errors.New("currency is required")
	}
	if c.queryTimeout < 0 {
		return errors.New("query timeout can't be negative")
	}
	return nil
}

func (c *cmdFlags) runnerConfig() runner.Config {
	return runner.Config{
		Scheme:   c.scheme,
		Lookback: time.Duration(c.fetchAgeSeconds) * time.Second,
	}
}
