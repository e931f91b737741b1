package extract

import (
	"context"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/bradenaw/juniper/stream"
)

// IDs collects the ids returned by SEARCH or UID SEARCH. Ids reported more than once collapse.
func IDs(ctx context.Context, s stream.Stream[*response.Record], sink Sender, opts ...Option) (imap.IDSet, error) {
	x := newExtractor("ids", s, sink, opts)

	ids := imap.NewIDSet()

	for {
		rec, ok, err := x.next(ctx)
		if err != nil {
			return nil, err
		} else if !ok {
			return ids, nil
		}

		if parsed, ok := rec.Parsed().(*response.IDs); ok {
			ids.Add(parsed.IDs...)
			continue
		}

		if err := x.reroute(ctx, rec); err != nil {
			return nil, err
		}
	}
}
