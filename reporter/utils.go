package reporter

import (
	"context"

	"github.com/sirupsen/logrus"
)

// MessageWithContext reports a message to the reporter carried by ctx, if any.
func MessageWithContext(ctx context.Context, message string, context Context) {
	reporter, ok := FromContext(ctx)
	if !ok {
		return
	}

	if err := reporter.ReportMessageWithContext(message, context); err != nil {
		logrus.WithError(err).Error("Failed to report message")
	}
}

// ExceptionWithContext reports an exception to the reporter carried by ctx, if any.
func ExceptionWithContext(ctx context.Context, info any, context Context) {
	reporter, ok := FromContext(ctx)
	if !ok {
		return
	}

	if err := reporter.ReportExceptionWithContext(info, context); err != nil {
		logrus.WithError(err).Error("Failed to report exception")
	}
}
