package metric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/billingmetrics/internal/service/metric"
)

func TestBillingServices(t *testing.T) {
	assert := assert.New(t)

	svcs := metric.BillingServices()
	assert.Len(svcs, 13)
	assert.Equal("AWSSupportDeveloper", svcs[0])
	assert.Equal("AWSQueueService", svcs[len(svcs)-1])

	// Modifying the returned catalog should not affect the next calls.
	svcs[0] = "modified"
	assert.Equal("AWSSupportDeveloper", metric.BillingServices()[0])
}
