package extract

import (
	"context"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"golang.org/x/exp/slices"
)

// Sender delivers unsolicited events. Send may block while the receiver is behind.
type Sender interface {
	Send(ctx context.Context, event imap.UnsolicitedEvent) error
}

// Classify checks whether the record is an unsolicited server push and, if so, sends the event.
// The bool reports whether the record was consumed. A record that is not consumed is returned to the
// caller unchanged; whether it is an error depends on the command being extracted.
// If the event cannot be sent, it is returned together with the sender's error.
func Classify(ctx context.Context, rec *response.Record, sink Sender) (imap.UnsolicitedEvent, bool, error) {
	event, ok := unilateral(rec)
	if !ok {
		return nil, false, nil
	}

	if err := sink.Send(ctx, event); err != nil {
		return event, true, err
	}

	return event, true, nil
}

func unilateral(rec *response.Record) (imap.UnsolicitedEvent, bool) {
	switch parsed := rec.Parsed().(type) {
	case *response.Status:
		return &imap.StatusPush{Mailbox: parsed.Mailbox, Attributes: slices.Clone(parsed.Items)}, true

	case *response.Recent:
		return &imap.RecentCount{Count: parsed.Count}, true

	case *response.Exists:
		return &imap.ExistsCount{Count: parsed.Count}, true

	case *response.Expunge:
		return &imap.Expunged{SeqNum: parsed.SeqNum}, true

	default:
		return nil, false
	}
}
