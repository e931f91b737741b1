package observability

import (
	"context"

	"github.com/ProtonMail/imapclient/observability/metrics"
)

type metricsKeyType struct{}

var metricsKeyVal metricsKeyType

func NewContextWithMetrics(ctx context.Context, m *metrics.Metrics) context.Context {
	return context.WithValue(ctx, metricsKeyVal, m)
}

func getMetricsFromContext(ctx context.Context) (*metrics.Metrics, bool) {
	v := ctx.Value(metricsKeyVal)
	if v == nil {
		return nil, false
	}

	m, ok := v.(*metrics.Metrics)

	return m, ok
}
