package k8s

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	k8sfake "k8s.io/client-go/kubernetes/fake"
)

func readyPod(name string, labels map[string]string) *corev1.Pod {
	p := pod(name, "default", labels)
	p.Status.Phase = corev1.PodRunning
	p.Status.Conditions = []corev1.PodCondition{
		{Type: corev1.PodReady, Status: corev1.ConditionTrue},
	}
	return p
}

func TestWaitForPodsReady_AllReady(t *testing.T) {
	clientset := k8sfake.NewSimpleClientset(
		readyPod("db-0", map[string]string{"app": "db"}),
		readyPod("db-1", map[string]string{"app": "db"}),
	)
	client := NewClientForClientset(clientset)

	err := client.WaitForPodsReady(context.Background(), "default", "app=db", time.Minute)
	assert.NoError(t, err)
}

func TestWaitForPodsReady_TimesOutOnUnready(t *testing.T) {
	unready := pod("db-0", "default", map[string]string{"app": "db"})
	unready.Status.Phase = corev1.PodPending

	client := NewClientForClientset(k8sfake.NewSimpleClientset(unready))

	err := client.WaitForPodsReady(context.Background(), "default", "app=db", 100*time.Millisecond)
	require.Error(t, err)
}

func TestWaitForPodsReady_TimesOutOnEmptyGroup(t *testing.T) {
	client := NewClientForClientset(k8sfake.NewSimpleClientset())

	err := client.WaitForPodsReady(context.Background(), "default", "app=db", 100*time.Millisecond)
	require.Error(t, err)
}

func TestIsPodReady(t *testing.T) {
	assert.True(t, IsPodReady(readyPod("db-0", nil)))

	pending := pod("db-0", "default", nil)
	pending.Status.Phase = corev1.PodPending
	assert.False(t, IsPodReady(pending))

	runningNotReady := pod("db-1", "default", nil)
	runningNotReady.Status.Phase = corev1.PodRunning
	runningNotReady.Status.Conditions = []corev1.PodCondition{
		{Type: corev1.PodReady, Status: corev1.ConditionFalse},
	}
	assert.False(t, IsPodReady(runningNotReady))
}
