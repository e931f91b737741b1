// Package observability records extractor metrics carried by a context.
// Nothing is recorded when the context carries no metrics.
package observability

import (
	"context"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/observability/metrics"
)

func AddReroutedMetric(ctx context.Context, event imap.UnsolicitedEvent) {
	if m, ok := getMetricsFromContext(ctx); ok {
		m.RecordsRerouted.With(metrics.LabelEvent, eventName(event)).Add(1)
	}
}

func AddUndeliveredMetric(ctx context.Context, event imap.UnsolicitedEvent) {
	if m, ok := getMetricsFromContext(ctx); ok {
		m.UndeliveredEvents.With(metrics.LabelEvent, eventName(event)).Add(1)
	}
}

func AddUnexpectedMetric(ctx context.Context, extractor string) {
	if m, ok := getMetricsFromContext(ctx); ok {
		m.UnexpectedResponses.With(metrics.LabelExtractor, extractor).Add(1)
	}
}

func AddInvariantViolationMetric(ctx context.Context) {
	if m, ok := getMetricsFromContext(ctx); ok {
		m.InvariantViolations.Add(1)
	}
}

func eventName(event imap.UnsolicitedEvent) string {
	switch event.(type) {
	case *imap.StatusPush:
		return "status"

	case *imap.RecentCount:
		return "recent"

	case *imap.ExistsCount:
		return "exists"

	case *imap.Expunged:
		return "expunge"

	default:
		return "unknown"
	}
}
