package metric

import (
	"time"

	"github.com/pkg/errors"

	"github.com/slok/billingmetrics/internal/model"
)

// DefaultLookback is the default duration that the window will cover.
const DefaultLookback = 4 * time.Hour

// windowEndBuffer is the gap left between now and the end of the window,
// billing datapoints lag behind real time.
const windowEndBuffer = 60 * time.Second

// ErrInvalidLookback is returned when the lookback is not positive.
var ErrInvalidLookback = errors.New("lookback must be greater than zero")

// NewTimeWindow returns the window that ends one minute before now and
// starts lookback before the end.
func NewTimeWindow(now time.Time, lookback time.Duration) (model.TimeWindow, error) {
	if lookback <= 0 {
		return model.TimeWindow{}, ErrInvalidLookback
	}

	end := now.Add(-windowEndBuffer)
	return model.TimeWindow{
		Start: end.Add(-lookback),
		End:   end,
	}, nil
}
