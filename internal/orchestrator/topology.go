package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	corev1 "k8s.io/api/core/v1"

	"github.com/podcycle/podcycle/internal/util/retry"
)

// DiscoverMembers lists the pods matching the stateful selector and
// returns them sorted ascending by ordinal. The returned sequence is
// computed once and stays fixed for the remainder of the run, even if
// the live set changes during execution.
//
// Zero members yields ErrEmptyGroup; a member count outside the
// supported shapes yields ErrUnsupportedTopology. Both are returned
// before any mutation happens.
func DiscoverMembers(ctx context.Context, cluster Cluster, namespace, labelSelector string) ([]Member, error) {
	var pods []corev1.Pod

	// Read-only call, safe to retry on transient API errors.
	err := retry.WithExponentialBackoff(ctx, func() error {
		var listErr error
		pods, listErr = cluster.ListPods(ctx, namespace, labelSelector)
		return listErr
	}, retry.WithMaxRetries(2), retry.WithInitialDelay(500*time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("failed to discover members: %w", err)
	}

	if len(pods) == 0 {
		return nil, ErrEmptyGroup
	}

	members := make([]Member, 0, len(pods))
	for i := range pods {
		name := pods[i].Name
		members = append(members, Member{Name: name, Ordinal: ordinalOf(name)})
	}

	// Numeric, not lexical: node-2 precedes node-10.
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Ordinal != members[j].Ordinal {
			return members[i].Ordinal < members[j].Ordinal
		}
		return members[i].Name < members[j].Name
	})

	if !supportedTopologies[len(members)] {
		return nil, fmt.Errorf("%w: %d members (supported: 1 or 3)", ErrUnsupportedTopology, len(members))
	}

	return members, nil
}

// ordinalOf extracts the trailing numeric suffix of a member name.
// Names without a suffix get ordinal -1 and sort first.
func ordinalOf(name string) int {
	end := len(name)
	start := end
	for start > 0 && name[start-1] >= '0' && name[start-1] <= '9' {
		start--
	}
	if start == end {
		return -1
	}

	ordinal, err := strconv.Atoi(name[start:end])
	if err != nil {
		return -1
	}
	return ordinal
}
