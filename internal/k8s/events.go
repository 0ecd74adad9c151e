package k8s

import (
	"context"
	"fmt"
	"sort"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ListWarningEvents returns the non-Normal lifecycle events recorded for
// a pod, ordered by event time ascending. The event window is whatever
// the API server currently retains.
func (c *Client) ListWarningEvents(ctx context.Context, namespace, podName string) ([]corev1.Event, error) {
	fieldSelector := fmt.Sprintf("involvedObject.name=%s,involvedObject.kind=Pod", podName)

	eventList, err := c.clientset.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{
		FieldSelector: fieldSelector,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events for pod %s/%s: %w", namespace, podName, err)
	}

	events := make([]corev1.Event, 0, len(eventList.Items))
	for _, event := range eventList.Items {
		if event.Type == corev1.EventTypeNormal {
			continue
		}
		events = append(events, event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return eventTime(&events[i]).Before(eventTime(&events[j]))
	})

	return events, nil
}

// eventTime picks the best available timestamp for an event. EventTime
// is set for events reported via the events API; older core events only
// carry First/LastTimestamp.
func eventTime(event *corev1.Event) time.Time {
	if !event.EventTime.IsZero() {
		return event.EventTime.Time
	}
	if !event.FirstTimestamp.IsZero() {
		return event.FirstTimestamp.Time
	}
	return event.LastTimestamp.Time
}
