package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/podcycle/podcycle/internal/runlog"
)

// Driver performs the sequential reset loop: for each member, in fixed
// order, audit then delete then pace. One member's deletion and pacing
// delay complete before the next member's audit begins — deleting
// ordinally addressed stateful members out of order or concurrently
// risks quorum loss in the backing service.
type Driver struct {
	cluster Cluster
	log     *runlog.Log
	pacing  time.Duration
	sleep   func(time.Duration)
}

// NewDriver builds a Driver. sleep may be nil, in which case time.Sleep
// is used; tests inject a recorder.
func NewDriver(cluster Cluster, log *runlog.Log, pacing time.Duration, sleep func(time.Duration)) *Driver {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Driver{cluster: cluster, log: log, pacing: pacing, sleep: sleep}
}

// ResetAll audits and deletes every member in order. Deletion failures
// are collected and logged but do not halt the loop: the driver is
// best-effort, and a member the control plane already rescheduled is
// not worth aborting the run over. The pacing delay gives the control
// plane time to start rescheduling before the next deletion lands, so
// the group is not missing more than one member at a time.
func (d *Driver) ResetAll(ctx context.Context, namespace string, members []Member) []error {
	var errs []error

	for _, member := range members {
		d.log.Section("member " + member.Name)

		events := FetchRecentEvents(ctx, d.cluster, namespace, member)
		if len(events) == 0 {
			d.log.Printf("no warning events")
		}
		for _, event := range events {
			d.log.Printf("%s  %s  %s  %s",
				event.Timestamp.Format(time.RFC3339), event.Type, event.Reason, event.Message)
		}

		if err := d.cluster.DeletePod(ctx, namespace, member.Name); err != nil {
			d.log.Printf("delete failed: %v", err)
			errs = append(errs, fmt.Errorf("member %s: %w", member.Name, err))
		} else {
			d.log.Printf("deleted %s", member.Name)
		}

		d.sleep(d.pacing)
	}

	return errs
}
