package output

import (
	"io"

	"github.com/pkg/errors"

	"github.com/slok/billingmetrics/internal/model"
)

// Emitter knows how to write metric lines.
type Emitter interface {
	// Emit writes a single metric line.
	Emit(line model.MetricLine) error
}

// Format is the format of the emitted lines.
type Format string

const (
	// FormatGraphite is the Graphite plaintext protocol.
	FormatGraphite Format = "graphite"
	// FormatInfluxDB is the InfluxDB line protocol.
	FormatInfluxDB Format = "influxdb"
)

// New returns a new emitter for the format that writes on w.
func New(format Format, w io.Writer) (Emitter, error) {
	switch format {
	case FormatGraphite, "":
		return NewGraphite(w), nil
	case FormatInfluxDB:
		return NewInfluxDB(w), nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}
