package extract

import (
	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/bradenaw/juniper/stream"
	"golang.org/x/exp/slices"
)

// Names returns the entries of a LIST or LSUB response, in the order the server sent them.
func Names(s stream.Stream[*response.Record], sink Sender, opts ...Option) stream.Stream[imap.Name] {
	return newLazy(newExtractor("names", s, sink, opts), func(rec *response.Record) (imap.Name, bool) {
		list, ok := rec.Parsed().(*response.List)
		if !ok {
			return imap.Name{}, false
		}

		return imap.Name{
			Attributes: slices.Clone(list.Attributes),
			Delimiter:  list.Delimiter,
			Name:       list.Name,
		}, true
	})
}
