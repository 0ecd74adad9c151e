package orchestrator

import (
	"context"
	"fmt"
	"time"
)

// AwaitReady blocks until every pod matching the selector reports
// ready, or the timeout elapses. This is a single whole-group barrier,
// not a per-member wait: the dependent pass must not run against a
// group still in a degraded state.
func AwaitReady(ctx context.Context, cluster Cluster, namespace, labelSelector string, timeout time.Duration) error {
	if err := cluster.WaitForPodsReady(ctx, namespace, labelSelector, timeout); err != nil {
		return fmt.Errorf("%w after %s: %v", ErrReadinessTimeout, timeout, err)
	}
	return nil
}
