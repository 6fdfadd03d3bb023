package model

import (
	"time"
)

// Sample represents a measured value in time.
type Sample struct {
	Value float64
	TS    time.Time
}

// TimeWindow represents the time range billing metrics are queried for.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// MetricLine is a single emitted value of a billed service.
type MetricLine struct {
	Scheme  string
	Service string
	Value   float64
	TS      time.Time
}

// Path returns the full metric path of the line.
func (m MetricLine) Path() string {
	return m.Scheme + "." + m.Service
}
