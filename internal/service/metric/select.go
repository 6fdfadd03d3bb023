package metric

import (
	"github.com/slok/billingmetrics/internal/model"
)

// SelectSample returns the most recent sample. Samples with the same
// timestamp are resolved using the greatest value so the result doesn't
// depend on the order the backend returned them.
// If there are no samples it will return false.
func SelectSample(samples []model.Sample) (model.Sample, bool) {
	if len(samples) == 0 {
		return model.Sample{}, false
	}

	selected := samples[0]
	for _, s := range samples[1:] {
		switch {
		case s.TS.After(selected.TS):
			selected = s
		case s.TS.Equal(selected.TS) && s.Value > selected.Value:
			selected = s
		}
	}

	return selected, true
}
