package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/ProtonMail/imapclient/observability"
	"github.com/ProtonMail/imapclient/reporter"
	"github.com/bradenaw/juniper/stream"
	"github.com/sirupsen/logrus"
)

// extractor holds what every extractor needs to read one command's records.
type extractor struct {
	name string
	s    stream.Stream[*response.Record]
	sink Sender
	cfg  *config
	log  logrus.FieldLogger
}

func newExtractor(name string, s stream.Stream[*response.Record], sink Sender, opts []Option) *extractor {
	cfg := newConfig(opts)

	return &extractor{
		name: name,
		s:    s,
		sink: sink,
		cfg:  cfg,
		log:  cfg.log.WithField("extractor", name),
	}
}

// next returns the next record of the command. The bool is false once the completion record
// was read or the stream ended.
func (x *extractor) next(ctx context.Context) (*response.Record, bool, error) {
	rec, err := x.s.Next(ctx)
	if errors.Is(err, stream.End) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	if rec.IsCompletion() {
		x.log.WithField("record", rec).Trace("Read completion")
		return nil, false, nil
	}

	return rec, true, nil
}

// reroute offers the record to the unilateral classifier.
// It fails if the record is not unsolicited or its event could not be delivered.
func (x *extractor) reroute(ctx context.Context, rec *response.Record) error {
	event, ok, err := Classify(ctx, rec, x.sink)
	if err != nil {
		return x.undelivered(ctx, event, err)
	}

	if !ok {
		return x.unexpected(ctx, rec)
	}

	x.rerouted(ctx, event)

	return nil
}

// forward delivers an event that belongs on the sink whatever the classifier says.
func (x *extractor) forward(ctx context.Context, event imap.UnsolicitedEvent) error {
	if err := x.sink.Send(ctx, event); err != nil {
		return x.undelivered(ctx, event, err)
	}

	x.rerouted(ctx, event)

	return nil
}

func (x *extractor) rerouted(ctx context.Context, event imap.UnsolicitedEvent) {
	observability.AddReroutedMetric(ctx, event)

	x.log.WithField("event", event).Trace("Rerouted unsolicited response")
}

func (x *extractor) undelivered(ctx context.Context, event imap.UnsolicitedEvent, err error) error {
	observability.AddUndeliveredMetric(ctx, event)

	x.log.WithError(err).WithField("event", event).Warn("Failed to deliver unsolicited response")

	return fmt.Errorf("failed to deliver unsolicited response: %w", err)
}

func (x *extractor) unexpected(ctx context.Context, rec *response.Record) error {
	observability.AddUnexpectedMetric(ctx, x.name)

	x.log.WithField("record", rec).Warn("Unexpected response")

	reporter.MessageWithContext(ctx, "Unexpected response", reporter.Context{
		"extractor": x.name,
		"record":    rec.String(),
	})

	return &UnexpectedResponseError{Record: rec}
}

func (x *extractor) violation(ctx context.Context, rec *response.Record, reason string) error {
	observability.AddInvariantViolationMetric(ctx)

	x.log.WithField("record", rec).WithField("reason", reason).Error("Protocol invariant violated")

	reporter.ExceptionWithContext(ctx, "Protocol invariant violated", reporter.Context{
		"extractor": x.name,
		"reason":    reason,
		"record":    rec.String(),
	})

	return &InvariantViolationError{Record: rec, Reason: reason}
}

// isStrayFetch returns true if the record is a FETCH response that should be skipped.
func (x *extractor) isStrayFetch(rec *response.Record) bool {
	if !x.cfg.ignoreStrayFetches {
		return false
	}

	if _, ok := rec.Parsed().(*response.Fetch); !ok {
		return false
	}

	x.log.WithField("record", rec).Debug("Ignoring stray fetch response")

	return true
}
