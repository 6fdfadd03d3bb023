package output_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/billingmetrics/internal/model"
	"github.com/slok/billingmetrics/internal/service/output"
)

func TestEmitters(t *testing.T) {
	tests := []struct {
		name   string
		format output.Format
		lines  []model.MetricLine
		exp    string
	}{
		{
			name:   "Graphite should write the plaintext protocol.",
			format: output.FormatGraphite,
			lines: []model.MetricLine{
				{Scheme: "billing.cost_estimate", Service: "storage", Value: 12.34, TS: time.Unix(1700000000, 0)},
			},
			exp: "billing.cost_estimate.storage 12.34 1700000000\n",
		},
		{
			name:   "Graphite should be the default format.",
			format: "",
			lines: []model.MetricLine{
				{Scheme: "aws", Service: "AmazonS3", Value: 1, TS: time.Unix(1700000000, 0)},
			},
			exp: "aws.AmazonS3 1 1700000000\n",
		},
		{
			name:   "Graphite timestamps should be truncated to seconds.",
			format: output.FormatGraphite,
			lines: []model.MetricLine{
				{Scheme: "aws", Service: "AmazonEC2", Value: 0.5, TS: time.Unix(1700000000, 999999999)},
				{Scheme: "aws", Service: "AmazonRDS", Value: 1234567.891, TS: time.Unix(1700000060, 1)},
			},
			exp: "aws.AmazonEC2 0.5 1700000000\naws.AmazonRDS 1234567.891 1700000060\n",
		},
		{
			name:   "InfluxDB should write the line protocol.",
			format: output.FormatInfluxDB,
			lines: []model.MetricLine{
				{Scheme: "billing.cost_estimate", Service: "AmazonS3", Value: 12.34, TS: time.Unix(1700000000, 0)},
			},
			exp: "billing.cost_estimate,service=AmazonS3 value=12.34 1700000000\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			var b bytes.Buffer
			e, err := output.New(test.format, &b)
			require.NoError(err)

			for _, l := range test.lines {
				require.NoError(e.Emit(l))
			}
			assert.Equal(test.exp, b.String())
		})
	}
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := output.New("json", &bytes.Buffer{})
	if assert.Error(t, err) {
		assert.Equal(t, `unknown output format "json"`, err.Error())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("wanted error") }

func TestEmittersWriteError(t *testing.T) {
	for _, f := range []output.Format{output.FormatGraphite, output.FormatInfluxDB} {
		t.Run(string(f), func(t *testing.T) {
			e, err := output.New(f, failingWriter{})
			require.NoError(t, err)

			err = e.Emit(model.MetricLine{Scheme: "aws", Service: "AmazonS3", Value: 1, TS: time.Unix(1, 0)})
			assert.Error(t, err)
		})
	}
}
