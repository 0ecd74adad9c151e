// Package orchestrator drives the ordered reset of a stateful pod group:
// topology validation, per-member event audit, strictly sequential
// deletion with pacing, a whole-group readiness barrier, and a dependent
// unordered deletion pass with a terminal monitor handoff.
package orchestrator

import (
	"context"
	"errors"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// Member is one pod of the stateful group. The ordinal is the trailing
// numeric suffix of the pod name and is used only for ordering.
type Member struct {
	Name    string
	Ordinal int
}

// AuditEvent is one warning/error lifecycle record for a member,
// captured before the member is disturbed.
type AuditEvent struct {
	Timestamp time.Time
	Type      string
	Reason    string
	Message   string
}

// Outcome classifies how a run ended.
type Outcome string

const (
	// OutcomeSuccess means the run completed, including the dependent pass.
	OutcomeSuccess Outcome = "success"
	// OutcomeAborted means validation failed before any mutation.
	OutcomeAborted Outcome = "aborted"
	// OutcomeTimedOut means the group never became ready after the reset loop.
	OutcomeTimedOut Outcome = "timed-out"
)

var (
	// ErrEmptyGroup means the stateful selector matched no pods. Non-fatal:
	// the reset loop and readiness gate are skipped.
	ErrEmptyGroup = errors.New("no members match the stateful selector")

	// ErrUnsupportedTopology means the member count is outside the
	// supported cluster shapes. Fatal, raised before any mutation.
	ErrUnsupportedTopology = errors.New("unsupported topology")

	// ErrReadinessTimeout means the group did not stabilize within the
	// configured bound. Fatal: the dependent pass must not run against a
	// degraded group.
	ErrReadinessTimeout = errors.New("group did not become ready within the timeout")
)

// supportedTopologies are the member counts the reset loop is safe for:
// a single node, or a three-node replicated cluster.
var supportedTopologies = map[int]bool{1: true, 3: true}

// Cluster is the control-plane capability the orchestrator consumes.
// internal/k8s.Client implements it; tests substitute fakes.
type Cluster interface {
	ListPods(ctx context.Context, namespace, labelSelector string) ([]corev1.Pod, error)
	ListWarningEvents(ctx context.Context, namespace, podName string) ([]corev1.Event, error)
	DeletePod(ctx context.Context, namespace, name string) error
	WaitForPodsReady(ctx context.Context, namespace, labelSelector string, timeout time.Duration) error
}

// Monitor is the external interactive monitoring tool the run hands
// control to as its terminal step.
type Monitor interface {
	Handoff(ctx context.Context) error
}
