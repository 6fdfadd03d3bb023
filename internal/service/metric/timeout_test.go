package metric_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mmetric "github.com/slok/billingmetrics/internal/mocks/service/metric"
	mmetrics "github.com/slok/billingmetrics/internal/mocks/service/metrics"
	"github.com/slok/billingmetrics/internal/model"
	"github.com/slok/billingmetrics/internal/service/metric"
)

func TestTimeoutGatherer(t *testing.T) {
	tw := model.TimeWindow{Start: time.Unix(0, 0), End: time.Unix(100, 0)}

	tests := []struct {
		name    string
		timeout time.Duration
		gather  metric.GathererFunc
		expErr  bool
	}{
		{
			name:    "A fast query should not timeout.",
			timeout: time.Second,
			gather: func(ctx context.Context, _ string, _ model.TimeWindow) ([]model.Sample, error) {
				return []model.Sample{{Value: 1}}, nil
			},
		},
		{
			name:    "A slow query should timeout.",
			timeout: 10 * time.Millisecond,
			gather: func(ctx context.Context, _ string, _ model.TimeWindow) ([]model.Sample, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			expErr: true,
		},
		{
			name:    "Disabled timeout should not set a deadline.",
			timeout: 0,
			gather: func(ctx context.Context, _ string, _ model.TimeWindow) ([]model.Sample, error) {
				if _, ok := ctx.Deadline(); ok {
					return nil, errors.New("unexpected deadline")
				}
				return nil, nil
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)

			g := metric.NewTimeoutGatherer(test.gather, test.timeout)
			_, err := g.GatherServiceCharges(context.Background(), "AmazonS3", tw)
			if test.expErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func TestMeasuredGatherer(t *testing.T) {
	tests := []struct {
		name       string
		gatherErr  error
		expSuccess bool
	}{
		{
			name:       "Successful queries should be measured as successful.",
			expSuccess: true,
		},
		{
			name:       "Failed queries should be measured as failed.",
			gatherErr:  errors.New("wanted error"),
			expSuccess: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			tw := model.TimeWindow{Start: time.Unix(0, 0), End: time.Unix(100, 0)}

			mg := &mmetric.Gatherer{}
			mg.On("GatherServiceCharges", mock.Anything, "AmazonEC2", tw).Once().Return(nil, test.gatherErr)
			mr := &mmetrics.Recorder{}
			mr.On("ObserveQueryDuration", "AmazonEC2", test.expSuccess, mock.Anything).Once()

			g := metric.NewMeasuredGatherer(mg, mr)
			_, err := g.GatherServiceCharges(context.Background(), "AmazonEC2", tw)
			require.Equal(test.gatherErr, err)

			mg.AssertExpectations(t)
			mr.AssertExpectations(t)
		})
	}
}
