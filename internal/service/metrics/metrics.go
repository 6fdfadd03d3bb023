package metrics

import (
	"time"
)

// Recorder knows how to record the metrics of the application itself.
type Recorder interface {
	// ObserveQueryDuration measures the duration of a billing query.
	ObserveQueryDuration(service string, success bool, startedAt time.Time)
	// IncEmittedSamples increments the number of emitted samples.
	IncEmittedSamples()
	// SetLastRunSuccess sets the result of the last run.
	SetLastRunSuccess(success bool)
}

// Dummy is a dummy recorder.
var Dummy = &dummy{}

type dummy struct{}

func (dummy) ObserveQueryDuration(string, bool, time.Time) {}
func (dummy) IncEmittedSamples()                           {}
func (dummy) SetLastRunSuccess(bool)                       {}
