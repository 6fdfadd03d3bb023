package runner

import (
	"time"

	"github.com/pkg/errors"

	"github.com/slok/billingmetrics/internal/service/metric"
)

// DefaultScheme is the default prefix of every emitted metric path.
const DefaultScheme = "billing.cost_estimate"

// Config is the configuration of a billing metrics run.
type Config struct {
	// Scheme is the prefix prepended to every emitted metric path.
	Scheme string
	// Lookback is how long before the window end the metrics will be fetched.
	Lookback time.Duration
	// Services are the billed services that will be queried in order.
	// If empty, the billing services catalog will be used.
	Services []string
}

func (c *Config) defaults() {
	if c.Scheme == "" {
		c.Scheme = DefaultScheme
	}
	if c.Lookback == 0 {
		c.Lookback = metric.DefaultLookback
	}
	if len(c.Services) == 0 {
		c.Services = metric.BillingServices()
	}
}

// Validate checks the configuration is correct.
func (c Config) Validate() error {
	if c.Scheme == "" {
		return errors.New("scheme is required")
	}
	if c.Lookback <= 0 {
		return errors.Wrapf(metric.ErrInvalidLookback, "invalid lookback %s", c.Lookback)
	}
	for i, s := range c.Services {
		if s == "" {
			return errors.Errorf("service at position %d is empty", i)
		}
	}
	return nil
}
