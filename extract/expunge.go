package extract

import (
	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/bradenaw/juniper/stream"
)

// Expunges returns the sequence numbers reported by the response to EXPUNGE.
// They are returned as sent: each one is relative to the mailbox after the previous removals.
func Expunges(s stream.Stream[*response.Record], sink Sender, opts ...Option) stream.Stream[imap.SeqID] {
	return newLazy(newExtractor("expunges", s, sink, opts), func(rec *response.Record) (imap.SeqID, bool) {
		expunge, ok := rec.Parsed().(*response.Expunge)
		if !ok {
			return 0, false
		}

		return expunge.SeqNum, true
	})
}
