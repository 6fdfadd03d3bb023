package runner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/slok/billingmetrics/internal/model"
	"github.com/slok/billingmetrics/internal/service/log"
	"github.com/slok/billingmetrics/internal/service/metric"
	"github.com/slok/billingmetrics/internal/service/metrics"
	"github.com/slok/billingmetrics/internal/service/output"
)

// Runner gathers the billing metrics of all the services and emits them.
// A runner can only be run once.
type Runner struct {
	cfg      Config
	gatherer metric.Gatherer
	emitter  output.Emitter
	recorder metrics.Recorder
	logger   log.Logger

	ran bool
	mu  sync.Mutex
}

// New returns a new runner. The configuration is validated once here.
func New(cfg Config, gatherer metric.Gatherer, emitter output.Emitter, recorder metrics.Recorder, logger log.Logger) (*Runner, error) {
	cfg.defaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid runner configuration")
	}

	if gatherer == nil {
		return nil, errors.New("gatherer is required")
	}
	if emitter == nil {
		return nil, errors.New("emitter is required")
	}
	if recorder == nil {
		recorder = metrics.Dummy
	}
	if logger == nil {
		logger = log.Dummy
	}

	return &Runner{
		cfg:      cfg,
		gatherer: gatherer,
		emitter:  emitter,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// Run will query every service in order and emit its selected sample. The
// first error aborts the run and the remaining services are not queried.
func (r *Runner) Run(ctx context.Context, now time.Time) model.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ran {
		return model.Result{Status: model.StatusCritical, Message: "already run"}
	}
	r.ran = true

	res := r.run(ctx, now)
	r.recorder.SetLastRunSuccess(res.OK())
	return res
}

func (r *Runner) run(ctx context.Context, now time.Time) model.Result {
	tw, err := metric.NewTimeWindow(now, r.cfg.Lookback)
	if err != nil {
		return model.Result{Status: model.StatusCritical, Message: err.Error(), Cause: causeMessage(err)}
	}

	logger := r.logger.WithValues(map[string]interface{}{
		"run_id": uuid.New().String(),
		"start":  tw.Start.Format(time.RFC3339),
		"end":    tw.End.Format(time.RFC3339),
	})
	logger.Debugf("gathering billing metrics of %d services", len(r.cfg.Services))

	emitted := 0
	for _, svc := range r.cfg.Services {
		ok, err := r.processService(ctx, logger, svc, tw)
		if err != nil {
			logger.Errorf("run aborted: %s", err)
			return model.Result{
				Status:  model.StatusCritical,
				Message: err.Error(),
				Cause:   causeMessage(err),
				Emitted: emitted,
			}
		}
		if ok {
			emitted++
		}
	}

	logger.Infof("%d billing metrics emitted", emitted)
	return model.Result{Status: model.StatusOK, Emitted: emitted}
}

// processService returns true if a line was emitted for the service.
func (r *Runner) processService(ctx context.Context, logger log.Logger, service string, tw model.TimeWindow) (bool, error) {
	samples, err := r.gatherer.GatherServiceCharges(ctx, service, tw)
	if err != nil {
		return false, &QueryError{Service: service, Err: err}
	}

	sample, ok := metric.SelectSample(samples)
	if !ok {
		logger.Debugf("no billing samples for service %s", service)
		return false, nil
	}

	line := model.MetricLine{
		Scheme:  r.cfg.Scheme,
		Service: service,
		Value:   sample.Value,
		TS:      sample.TS,
	}
	if err := r.emitter.Emit(line); err != nil {
		return false, &EmitError{Path: line.Path(), Err: err}
	}
	r.recorder.IncEmittedSamples()

	return true, nil
}
