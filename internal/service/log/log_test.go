package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/billingmetrics/internal/service/log"
)

func TestZerologLogger(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		log      func(l log.Logger)
		expLevel string
		expMsg   string
		expEmpty bool
	}{
		{
			name:     "Info entries should be logged.",
			log:      func(l log.Logger) { l.Infof("hello %s", "world") },
			expLevel: "info",
			expMsg:   "hello world",
		},
		{
			name:     "Errors entries should be logged.",
			log:      func(l log.Logger) { l.Errorf("failed: %d", 42) },
			expLevel: "error",
			expMsg:   "failed: 42",
		},
		{
			name:     "Debug entries should be ignored without debug mode.",
			log:      func(l log.Logger) { l.Debugf("hidden") },
			expEmpty: true,
		},
		{
			name:     "Debug entries should be logged in debug mode.",
			debug:    true,
			log:      func(l log.Logger) { l.Debugf("visible") },
			expLevel: "debug",
			expMsg:   "visible",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			var b bytes.Buffer
			l, err := log.NewZerolog(log.Config{Out: &b, Format: log.FormatJSON, Debug: test.debug})
			require.NoError(err)

			test.log(l)

			if test.expEmpty {
				assert.Empty(b.String())
				return
			}

			entry := map[string]interface{}{}
			require.NoError(json.Unmarshal(b.Bytes(), &entry))
			assert.Equal(test.expLevel, entry["level"])
			assert.Equal(test.expMsg, entry["message"])
		})
	}
}

func TestZerologLoggerWithValues(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var b bytes.Buffer
	l, err := log.NewZerolog(log.Config{Out: &b, Format: log.FormatJSON})
	require.NoError(err)

	l.WithValues(map[string]interface{}{"service": "AmazonEC2"}).Warningf("no data")

	entry := map[string]interface{}{}
	require.NoError(json.Unmarshal(b.Bytes(), &entry))
	assert.Equal("AmazonEC2", entry["service"])
	assert.Equal("warn", entry["level"])
}

func TestZerologLoggerInvalidFormat(t *testing.T) {
	_, err := log.NewZerolog(log.Config{Out: &bytes.Buffer{}, Format: "xml"})
	if assert.Error(t, err) {
		assert.Equal(t, `unknown log format "xml"`, err.Error())
	}
}
