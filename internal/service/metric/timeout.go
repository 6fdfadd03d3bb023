package metric

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/slok/billingmetrics/internal/model"
	"github.com/slok/billingmetrics/internal/service/metrics"
)

// NewTimeoutGatherer wraps a gatherer and sets a deadline on every query.
// A timeout of 0 or less returns the original gatherer.
func NewTimeoutGatherer(g Gatherer, timeout time.Duration) Gatherer {
	if timeout <= 0 {
		return g
	}

	return &timeoutGatherer{
		gatherer: g,
		timeout:  timeout,
	}
}

type timeoutGatherer struct {
	gatherer Gatherer
	timeout  time.Duration
}

func (t *timeoutGatherer) GatherServiceCharges(ctx context.Context, service string, tw model.TimeWindow) ([]model.Sample, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	samples, err := t.gatherer.GatherServiceCharges(ctx, service, tw)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.Wrapf(err, "query timeout after %s", t.timeout)
		}
		return nil, err
	}

	return samples, nil
}

// NewMeasuredGatherer wraps a gatherer and measures every query with the recorder.
func NewMeasuredGatherer(g Gatherer, rec metrics.Recorder) Gatherer {
	return &measuredGatherer{
		gatherer: g,
		rec:      rec,
	}
}

type measuredGatherer struct {
	gatherer Gatherer
	rec      metrics.Recorder
}

func (m *measuredGatherer) GatherServiceCharges(ctx context.Context, service string, tw model.TimeWindow) (samples []model.Sample, err error) {
	defer func(t time.Time) {
		m.rec.ObserveQueryDuration(service, err == nil, t)
	}(time.Now())

	return m.gatherer.GatherServiceCharges(ctx, service, tw)
}
