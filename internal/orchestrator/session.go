package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/podcycle/podcycle/internal/runlog"
)

// Params are the config-derived inputs for one run.
type Params struct {
	Namespace         string
	StatefulSelector  string
	DependentSelector string
	PacingDelay       time.Duration
	ReadinessTimeout  time.Duration
	HandoffDelay      time.Duration
}

// Result records how a run ended. ResetErrors and DependentErrors hold
// the recoverable failures the run absorbed; only the Outcome and the
// returned error reflect the fatal categories.
type Result struct {
	Outcome         Outcome
	Members         []Member
	ResetErrors     []error
	DependentErrors []error
}

// Orchestrator ties the components of one run together. Clock and sleep
// are injected so tests run deterministically; everything else is an
// explicit collaborator rather than ambient state.
type Orchestrator struct {
	cluster Cluster
	monitor Monitor
	log     *runlog.Log
	params  Params
	clock   func() time.Time
	sleep   func(time.Duration)
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithClock overrides the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(o *Orchestrator) { o.clock = clock }
}

// WithSleep overrides the sleep function used for pacing and handoff delays.
func WithSleep(sleep func(time.Duration)) Option {
	return func(o *Orchestrator) { o.sleep = sleep }
}

// New builds an Orchestrator.
func New(cluster Cluster, monitor Monitor, log *runlog.Log, params Params, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cluster: cluster,
		monitor: monitor,
		log:     log,
		params:  params,
		clock:   time.Now,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes one reset session: topology validation, the sequential
// reset loop, the readiness gate, the dependent pass, and the monitor
// handoff. The returned error is non-nil only for the fatal categories
// (unsupported topology, readiness timeout); everything else is
// absorbed into the Result and the session log.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	started := o.clock()
	o.log.Printf("podcycle run started %s", started.Format(time.RFC3339))
	o.log.Printf("namespace=%s stateful=%s dependent=%s",
		o.params.Namespace, o.params.StatefulSelector, o.params.DependentSelector)

	result := &Result{}

	members, err := DiscoverMembers(ctx, o.cluster, o.params.Namespace, o.params.StatefulSelector)
	switch {
	case errors.Is(err, ErrEmptyGroup):
		o.log.Printf("no members match %s, skipping reset", o.params.StatefulSelector)
	case err != nil:
		result.Outcome = OutcomeAborted
		o.log.Printf("aborted: %v", err)
		return result, err
	}
	result.Members = members

	if len(members) > 0 {
		driver := NewDriver(o.cluster, o.log, o.params.PacingDelay, o.sleep)
		result.ResetErrors = driver.ResetAll(ctx, o.params.Namespace, members)

		o.log.Printf("")
		o.log.Printf("waiting for group to become ready (timeout %s)", o.params.ReadinessTimeout)
		if err := AwaitReady(ctx, o.cluster, o.params.Namespace, o.params.StatefulSelector, o.params.ReadinessTimeout); err != nil {
			result.Outcome = OutcomeTimedOut
			o.log.Printf("failed: %v", err)
			o.log.Printf("dependent reset skipped, run failed")
			return result, err
		}
		o.log.Printf("group ready")
	}

	result.DependentErrors = TriggerDependentReset(ctx, o.cluster, o.log, o.params.Namespace, o.params.DependentSelector)

	result.Outcome = OutcomeSuccess
	o.log.Printf("")
	o.log.Printf("run complete: %d members reset, %d reset errors, %d dependent errors",
		len(members), len(result.ResetErrors), len(result.DependentErrors))

	o.log.Printf("handing off to monitor in %s", o.params.HandoffDelay)
	o.sleep(o.params.HandoffDelay)

	// Terminal step: orchestrator logic does not resume after this.
	if err := o.monitor.Handoff(ctx); err != nil {
		o.log.Printf("monitor handoff failed: %v", err)
	}

	return result, nil
}
