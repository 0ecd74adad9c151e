package k8s

import (
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/wait"
)

// readyPollInterval is how often the readiness barrier re-checks the group.
const readyPollInterval = 5 * time.Second

// WaitForPodsReady blocks until every pod matching the label selector is
// ready, or the timeout elapses. An empty match is treated as not ready:
// the barrier exists to confirm the group came back, not that it is gone.
func (c *Client) WaitForPodsReady(ctx context.Context, namespace, labelSelector string, timeout time.Duration) error {
	return wait.PollUntilContextTimeout(ctx, readyPollInterval, timeout, true, func(ctx context.Context) (bool, error) {
		pods, err := c.ListPods(ctx, namespace, labelSelector)
		if err != nil {
			return false, nil
		}

		if len(pods) == 0 {
			return false, nil
		}

		for i := range pods {
			if !IsPodReady(&pods[i]) {
				return false, nil
			}
		}

		return true, nil
	})
}

// IsPodReady reports whether a pod is running with a True Ready condition.
func IsPodReady(pod *corev1.Pod) bool {
	if pod.Status.Phase != corev1.PodRunning {
		return false
	}

	for _, condition := range pod.Status.Conditions {
		if condition.Type == corev1.PodReady &&
			condition.Status == corev1.ConditionTrue {
			return true
		}
	}

	return false
}
