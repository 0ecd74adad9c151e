package orchestrator

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"

	"github.com/podcycle/podcycle/internal/runlog"
)

func testParams() Params {
	return Params{
		Namespace:         "default",
		StatefulSelector:  "app=db",
		DependentSelector: "app=web",
		PacingDelay:       10 * time.Second,
		ReadinessTimeout:  5 * time.Minute,
		HandoffDelay:      3 * time.Second,
	}
}

func newTestOrchestrator(cluster *fakeCluster, mon *fakeMonitor, buf *bytes.Buffer) *Orchestrator {
	return New(cluster, mon, runlog.NewWithWriter(buf), testParams(),
		WithClock(func() time.Time { return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC) }),
		WithSleep(func(time.Duration) {}),
	)
}

// Scenario A: single-member group, everything succeeds.
func TestRun_SingleMemberSuccess(t *testing.T) {
	cluster := &fakeCluster{pods: map[string][]corev1.Pod{
		"app=db":  podsNamed("node-0"),
		"app=web": podsNamed("web-a", "web-b"),
	}}
	mon := &fakeMonitor{}
	var buf bytes.Buffer

	result, err := newTestOrchestrator(cluster, mon, &buf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Empty(t, result.ResetErrors)
	assert.Empty(t, result.DependentErrors)
	assert.True(t, mon.called)

	assert.Contains(t, cluster.calls, "delete:node-0")
	assert.Contains(t, cluster.calls, "wait:app=db")
	assert.Contains(t, cluster.calls, "delete:web-a")
	assert.Contains(t, cluster.calls, "delete:web-b")
}

// Scenario B: three-member group processed strictly in ordinal order,
// three audit sections in the log.
func TestRun_ThreeMemberOrder(t *testing.T) {
	cluster := &fakeCluster{pods: map[string][]corev1.Pod{
		"app=db": podsNamed("node-2", "node-0", "node-1"),
	}}
	mon := &fakeMonitor{}
	var buf bytes.Buffer

	result, err := newTestOrchestrator(cluster, mon, &buf).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, result.Outcome)

	var deletes []string
	for _, call := range cluster.calls {
		if strings.HasPrefix(call, "delete:node-") {
			deletes = append(deletes, call)
		}
	}
	assert.Equal(t, []string{"delete:node-0", "delete:node-1", "delete:node-2"}, deletes)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "=== member node-"))
}

// Scenario C: two-member group aborts before any mutation.
func TestRun_UnsupportedTopologyAborts(t *testing.T) {
	cluster := &fakeCluster{pods: map[string][]corev1.Pod{
		"app=db": podsNamed("node-0", "node-1"),
	}}
	mon := &fakeMonitor{}
	var buf bytes.Buffer

	result, err := newTestOrchestrator(cluster, mon, &buf).Run(context.Background())
	require.ErrorIs(t, err, ErrUnsupportedTopology)

	assert.Equal(t, OutcomeAborted, result.Outcome)
	assert.False(t, mon.called)
	for _, call := range cluster.calls {
		assert.NotContains(t, call, "delete:")
	}
	assert.Contains(t, buf.String(), "aborted")
}

// Scenario D: readiness never clears; deletions happened but the
// dependent pass is skipped and the run reports failure.
func TestRun_ReadinessTimeoutSkipsDependent(t *testing.T) {
	cluster := &fakeCluster{
		pods: map[string][]corev1.Pod{
			"app=db":  podsNamed("node-0", "node-1", "node-2"),
			"app=web": podsNamed("web-a"),
		},
		readyErr: errBoom,
	}
	mon := &fakeMonitor{}
	var buf bytes.Buffer

	result, err := newTestOrchestrator(cluster, mon, &buf).Run(context.Background())
	require.ErrorIs(t, err, ErrReadinessTimeout)

	assert.Equal(t, OutcomeTimedOut, result.Outcome)
	assert.False(t, mon.called)

	assert.Contains(t, cluster.calls, "delete:node-0")
	assert.Contains(t, cluster.calls, "delete:node-1")
	assert.Contains(t, cluster.calls, "delete:node-2")
	assert.NotContains(t, cluster.calls, "delete:web-a")
	assert.NotContains(t, cluster.calls, "list:app=web")
}

// Empty group: reset and gate are skipped, the run still succeeds and
// the dependent pass still runs.
func TestRun_EmptyGroupSkipsReset(t *testing.T) {
	cluster := &fakeCluster{pods: map[string][]corev1.Pod{
		"app=web": podsNamed("web-a"),
	}}
	mon := &fakeMonitor{}
	var buf bytes.Buffer

	result, err := newTestOrchestrator(cluster, mon, &buf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Empty(t, result.Members)
	assert.NotContains(t, cluster.calls, "wait:app=db")
	assert.Contains(t, cluster.calls, "delete:web-a")
	assert.True(t, mon.called)
	assert.Contains(t, buf.String(), "skipping reset")
}

// Deletion failures are absorbed: the run still reaches the dependent
// pass and reports success with the errors collected.
func TestRun_DeleteFailureStillSucceeds(t *testing.T) {
	cluster := &fakeCluster{
		pods: map[string][]corev1.Pod{
			"app=db":  podsNamed("node-0", "node-1", "node-2"),
			"app=web": podsNamed("web-a"),
		},
		deleteErr: map[string]error{"node-1": errBoom},
	}
	mon := &fakeMonitor{}
	var buf bytes.Buffer

	result, err := newTestOrchestrator(cluster, mon, &buf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	require.Len(t, result.ResetErrors, 1)
	assert.Contains(t, cluster.calls, "delete:node-2")
	assert.Contains(t, cluster.calls, "delete:web-a")
}

// Monitor failure after a successful run is logged, not fatal.
func TestRun_MonitorFailureIsNonFatal(t *testing.T) {
	cluster := &fakeCluster{pods: map[string][]corev1.Pod{
		"app=db": podsNamed("node-0"),
	}}
	mon := &fakeMonitor{err: errBoom}
	var buf bytes.Buffer

	result, err := newTestOrchestrator(cluster, mon, &buf).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Contains(t, buf.String(), "monitor handoff failed")
}
