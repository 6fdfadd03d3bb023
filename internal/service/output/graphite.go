package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/slok/billingmetrics/internal/model"
)

type graphite struct {
	w io.Writer
}

// NewGraphite returns an emitter that writes lines using the Graphite
// plaintext protocol: `<path> <value> <timestamp>`.
func NewGraphite(w io.Writer) Emitter {
	return &graphite{w: w}
}

func (g *graphite) Emit(line model.MetricLine) error {
	value := strconv.FormatFloat(line.Value, 'f', -1, 64)
	_, err := fmt.Fprintf(g.w, "%s %s %d\n", line.Path(), value, line.TS.Unix())
	if err != nil {
		return errors.Wrap(err, "could not write graphite line")
	}
	return nil
}
