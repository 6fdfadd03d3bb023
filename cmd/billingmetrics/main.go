package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/slok/billingmetrics/internal/model"
	"github.com/slok/billingmetrics/internal/runner"
	"github.com/slok/billingmetrics/internal/service/log"
	"github.com/slok/billingmetrics/internal/service/metric"
	"github.com/slok/billingmetrics/internal/service/metric/cloudwatch"
	"github.com/slok/billingmetrics/internal/service/metrics"
	"github.com/slok/billingmetrics/internal/service/output"
)

// Exit codes used by the monitoring checks.
const (
	exitOK       = 0
	exitCritical = 2
)

// gathererFactory creates the billing metrics gatherer from the flags.
type gathererFactory func(ctx context.Context, flags *cmdFlags) (metric.Gatherer, error)

// newCloudWatchGatherer returns a gatherer backed by AWS CloudWatch.
func newCloudWatchGatherer(ctx context.Context, flags *cmdFlags) (metric.Gatherer, error) {
	cwCli, err := cloudwatch.NewClient(ctx, cloudwatch.ClientConfig{
		Region:          flags.awsRegion,
		AccessKeyID:     flags.awsAccessKey,
		SecretAccessKey: flags.awsSecretAccessKey,
	})
	if err != nil {
		return nil, err
	}

	g, err := cloudwatch.NewGatherer(cloudwatch.ConfigGatherer{
		Client:   cwCli,
		Currency: flags.currency,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create cloudwatch gatherer")
	}
	return g, nil
}

// Main is the main application.
type Main struct {
	flags       *cmdFlags
	stdout      io.Writer
	logger      log.Logger
	newGatherer gathererFactory
}

// Run runs the main application and returns the terminal result of the run.
func (m *Main) Run(ctx context.Context) (model.Result, error) {
	g, err := m.newGatherer(ctx, m.flags)
	if err != nil {
		return model.Result{}, err
	}

	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheus(reg)
	g = metric.NewTimeoutGatherer(g, m.flags.queryTimeout)
	g = metric.NewMeasuredGatherer(g, rec)

	out := bufio.NewWriter(m.stdout)
	emitter, err := output.New(output.Format(m.flags.outputFormat), out)
	if err != nil {
		return model.Result{}, err
	}

	r, err := runner.New(m.flags.runnerConfig(), g, emitter, rec, m.logger)
	if err != nil {
		return model.Result{}, err
	}

	res := m.runWithSignals(ctx, r)

	if !res.OK() {
		fmt.Fprintf(out, "%s CRITICAL: %s\n", appName, res.Message)
	}
	if err := out.Flush(); err != nil {
		return model.Result{}, errors.Wrap(err, "could not flush output")
	}

	if m.flags.pushgatewayURL != "" {
		if err := metrics.Push(m.flags.pushgatewayURL, reg); err != nil {
			m.logger.Warningf("%s", err)
		}
	}

	return res, nil
}

// runWithSignals runs the runner and cancels it if the process receives a
// termination signal.
func (m *Main) runWithSignals(ctx context.Context, r *runner.Runner) model.Result {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var res model.Result
	var g run.Group

	// Billing runner.
	g.Add(
		func() error {
			res = r.Run(ctx, time.Now())
			return nil
		},
		func(_ error) {
			cancel()
		},
	)

	// Signals.
	{
		sigC := make(chan os.Signal, 1)
		stopC := make(chan struct{})
		signal.Notify(sigC, syscall.SIGTERM, syscall.SIGINT)

		g.Add(
			func() error {
				select {
				case s := <-sigC:
					m.logger.Infof("signal %s received", s)
				case <-stopC:
				}
				return nil
			},
			func(_ error) {
				signal.Stop(sigC)
				close(stopC)
			},
		)
	}

	_ = g.Run()
	return res
}

func execute(args []string, stdout, stderr io.Writer, newGatherer gathererFactory) int {
	flags, err := newCmdFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, "error parsing flags: %s\n", err)
		return exitCritical
	}

	logger, err := log.NewZerolog(log.Config{
		Out:    stderr,
		Format: log.Format(flags.logFormat),
		Debug:  flags.debug,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error creating logger: %s\n", err)
		return exitCritical
	}

	m := &Main{
		flags:       flags,
		stdout:      stdout,
		logger:      logger,
		newGatherer: newGatherer,
	}

	res, err := m.Run(context.Background())
	if err != nil {
		fmt.Fprintf(stdout, "%s CRITICAL: %s\n", appName, err)
		return exitCritical
	}

	if !res.OK() {
		return exitCritical
	}
	return exitOK
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, newCloudWatchGatherer))
}
