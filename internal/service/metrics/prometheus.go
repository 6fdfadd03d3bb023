package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const (
	promNamespace = "billingmetrics"
	pushJobName   = "billingmetrics"
)

type prometheusRecorder struct {
	queryDuration  *prometheus.HistogramVec
	emittedSamples prometheus.Counter
	lastRunSuccess prometheus.Gauge
}

// NewPrometheus returns a new Prometheus recorder and registers its metrics
// on the registerer.
func NewPrometheus(reg prometheus.Registerer) Recorder {
	r := &prometheusRecorder{
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: promNamespace,
			Subsystem: "query",
			Name:      "duration_seconds",
			Help:      "The duration of the billing queries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "success"}),
		emittedSamples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: promNamespace,
			Name:      "emitted_samples_total",
			Help:      "The total number of emitted billing samples.",
		}),
		lastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: promNamespace,
			Name:      "last_run_success",
			Help:      "Whether the last run finished without errors.",
		}),
	}

	reg.MustRegister(
		r.queryDuration,
		r.emittedSamples,
		r.lastRunSuccess,
	)

	return r
}

func (p *prometheusRecorder) ObserveQueryDuration(service string, success bool, startedAt time.Time) {
	p.queryDuration.WithLabelValues(service, strconv.FormatBool(success)).Observe(time.Since(startedAt).Seconds())
}

func (p *prometheusRecorder) IncEmittedSamples() {
	p.emittedSamples.Inc()
}

func (p *prometheusRecorder) SetLastRunSuccess(success bool) {
	v := 0.0
	if success {
		v = 1
	}
	p.lastRunSuccess.Set(v)
}

// Push pushes the metrics of the registry to a Prometheus pushgateway.
func Push(url string, reg prometheus.Gatherer) error {
	err := push.New(url, pushJobName).Gatherer(reg).Push()
	if err != nil {
		return errors.Wrapf(err, "could not push metrics to %s", url)
	}
	return nil
}
