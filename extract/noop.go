package extract

import (
	"context"

	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/bradenaw/juniper/stream"
)

// Noop consumes the response to a command that returns no data, such as NOOP or CHECK.
// Every record before the completion must be unsolicited.
func Noop(ctx context.Context, s stream.Stream[*response.Record], sink Sender, opts ...Option) error {
	x := newExtractor("noop", s, sink, opts)

	for {
		rec, ok, err := x.next(ctx)
		if err != nil {
			return err
		} else if !ok {
			return nil
		}

		if err := x.reroute(ctx, rec); err != nil {
			return err
		}
	}
}
