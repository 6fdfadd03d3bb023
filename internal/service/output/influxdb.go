package output

import (
	"io"

	influxdb "github.com/influxdata/influxdb1-client/v2"
	"github.com/pkg/errors"

	"github.com/slok/billingmetrics/internal/model"
)

const (
	influxServiceTag = "service"
	influxValueField = "value"
	influxPrecision  = "s"
)

type influxDB struct {
	w io.Writer
}

// NewInfluxDB returns an emitter that writes lines using the InfluxDB line
// protocol with second precision. The scheme is used as the measurement and
// the service as a tag.
func NewInfluxDB(w io.Writer) Emitter {
	return &influxDB{w: w}
}

func (i *influxDB) Emit(line model.MetricLine) error {
	pt, err := influxdb.NewPoint(
		line.Scheme,
		map[string]string{influxServiceTag: line.Service},
		map[string]interface{}{influxValueField: line.Value},
		line.TS,
	)
	if err != nil {
		return errors.Wrap(err, "could not create influxdb point")
	}

	_, err = io.WriteString(i.w, pt.PrecisionString(influxPrecision)+"\n")
	if err != nil {
		return errors.Wrap(err, "could not write influxdb line")
	}
	return nil
}
