package orchestrator

import (
	"context"
	"fmt"

	"github.com/podcycle/podcycle/internal/runlog"
)

// TriggerDependentReset deletes every pod matching the dependent
// selector in one unordered pass. No ordinal semantics apply; the
// group is stateless and interchangeable. All errors are logged and
// collected but non-fatal, consistent with the driver's best-effort
// philosophy.
func TriggerDependentReset(ctx context.Context, cluster Cluster, log *runlog.Log, namespace, labelSelector string) []error {
	pods, err := cluster.ListPods(ctx, namespace, labelSelector)
	if err != nil {
		log.Printf("dependent reset: list failed: %v", err)
		return []error{fmt.Errorf("dependent reset: %w", err)}
	}

	if len(pods) == 0 {
		log.Printf("dependent reset: no pods match %s", labelSelector)
		return nil
	}

	var errs []error
	for i := range pods {
		name := pods[i].Name
		if err := cluster.DeletePod(ctx, namespace, name); err != nil {
			log.Printf("dependent reset: delete %s failed: %v", name, err)
			errs = append(errs, fmt.Errorf("dependent pod %s: %w", name, err))
			continue
		}
		log.Printf("dependent reset: deleted %s", name)
	}

	return errs
}
