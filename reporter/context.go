package reporter

import "context"

type reporterKeyType struct{}

var reporterKeyVal reporterKeyType

// NewContextWithReporter returns a context that carries the reporter to the extractors and readers.
func NewContextWithReporter(ctx context.Context, reporter Reporter) context.Context {
	return context.WithValue(ctx, reporterKeyVal, reporter)
}

func FromContext(ctx context.Context) (Reporter, bool) {
	rep, ok := ctx.Value(reporterKeyVal).(Reporter)

	return rep, ok
}
