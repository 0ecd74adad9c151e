package orchestrator

import (
	"context"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// FetchRecentEvents returns the recent warning/error lifecycle events
// for a member, ordered by timestamp ascending. Retrieval errors are
// swallowed: auditing is forensic best-effort and must never block or
// fail the reset. An empty result means "nothing to report" either way;
// the caller writes the explicit no-events marker.
func FetchRecentEvents(ctx context.Context, cluster Cluster, namespace string, member Member) []AuditEvent {
	events, err := cluster.ListWarningEvents(ctx, namespace, member.Name)
	if err != nil {
		return nil
	}

	audits := make([]AuditEvent, 0, len(events))
	for i := range events {
		event := &events[i]
		if event.Type == corev1.EventTypeNormal {
			continue
		}
		audits = append(audits, AuditEvent{
			Timestamp: auditTimestamp(event),
			Type:      event.Type,
			Reason:    event.Reason,
			Message:   event.Message,
		})
	}

	return audits
}

// auditTimestamp picks the best available timestamp for an event:
// EventTime when set, otherwise First/LastTimestamp from the core API.
func auditTimestamp(event *corev1.Event) time.Time {
	if !event.EventTime.IsZero() {
		return event.EventTime.Time
	}
	if !event.FirstTimestamp.IsZero() {
		return event.FirstTimestamp.Time
	}
	return event.LastTimestamp.Time
}
