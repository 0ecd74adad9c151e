package orchestrator

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// fakeCluster is a scripted Cluster that records every call in order.
type fakeCluster struct {
	pods      map[string][]corev1.Pod
	listErr   error
	events    map[string][]corev1.Event
	eventsErr error
	deleteErr map[string]error
	readyErr  error

	calls []string
}

func (f *fakeCluster) ListPods(_ context.Context, _, labelSelector string) ([]corev1.Pod, error) {
	f.calls = append(f.calls, "list:"+labelSelector)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.pods[labelSelector], nil
}

func (f *fakeCluster) ListWarningEvents(_ context.Context, _, podName string) ([]corev1.Event, error) {
	f.calls = append(f.calls, "events:"+podName)
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events[podName], nil
}

func (f *fakeCluster) DeletePod(_ context.Context, _, name string) error {
	f.calls = append(f.calls, "delete:"+name)
	if err := f.deleteErr[name]; err != nil {
		return err
	}
	return nil
}

func (f *fakeCluster) WaitForPodsReady(_ context.Context, _, labelSelector string, _ time.Duration) error {
	f.calls = append(f.calls, "wait:"+labelSelector)
	return f.readyErr
}

type fakeMonitor struct {
	called bool
	err    error
}

func (f *fakeMonitor) Handoff(_ context.Context) error {
	f.called = true
	return f.err
}

func podsNamed(names ...string) []corev1.Pod {
	pods := make([]corev1.Pod, 0, len(names))
	for _, name := range names {
		pods = append(pods, corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: name}})
	}
	return pods
}

func warningEvent(reason, message string, at time.Time) corev1.Event {
	return corev1.Event{
		Type:          corev1.EventTypeWarning,
		Reason:        reason,
		Message:       message,
		LastTimestamp: metav1.NewTime(at),
	}
}

var errBoom = fmt.Errorf("boom")
