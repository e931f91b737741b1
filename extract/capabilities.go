package extract

import (
	"context"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/bradenaw/juniper/stream"
)

// Capabilities collects the capabilities announced in the response to CAPABILITY.
// The first record that is neither a capability listing nor unsolicited fails the call,
// and no further records are read.
func Capabilities(ctx context.Context, s stream.Stream[*response.Record], sink Sender, opts ...Option) (imap.Capabilities, error) {
	x := newExtractor("capabilities", s, sink, opts)

	caps := imap.NewCapabilities()

	for {
		rec, ok, err := x.next(ctx)
		if err != nil {
			return nil, err
		} else if !ok {
			return caps, nil
		}

		if parsed, ok := rec.Parsed().(*response.Capabilities); ok {
			for _, c := range parsed.Caps {
				caps.Insert(c)
			}

			continue
		}

		if err := x.reroute(ctx, rec); err != nil {
			return nil, err
		}
	}
}
