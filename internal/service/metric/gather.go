package metric

import (
	"context"

	"github.com/slok/billingmetrics/internal/model"
)

// Gatherer knows how to gather billing metrics from a backend.
type Gatherer interface {
	// GatherServiceCharges gathers the estimated charges samples of a billed
	// service in the time window. The returned samples don't have any order.
	GatherServiceCharges(ctx context.Context, service string, tw model.TimeWindow) ([]model.Sample, error)
}

// GathererFunc is a helper to use functions as Gatherers.
type GathererFunc func(ctx context.Context, service string, tw model.TimeWindow) ([]model.Sample, error)

// GatherServiceCharges satisfies Gatherer interface.
func (g GathererFunc) GatherServiceCharges(ctx context.Context, service string, tw model.TimeWindow) ([]model.Sample, error) {
	return g(ctx, service, tw)
}
