package extract

import (
	"context"

	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/bradenaw/juniper/stream"
)

// lazy is a single-pass stream of the items matched among the records of one command.
// An unexpected record fails the call to Next that read it; the following call carries on
// with the next record. Once the completion record is read the stream only returns stream.End.
type lazy[T any] struct {
	*extractor

	match func(*response.Record) (T, bool)
	done  bool
}

func newLazy[T any](x *extractor, match func(*response.Record) (T, bool)) *lazy[T] {
	return &lazy[T]{extractor: x, match: match}
}

func (l *lazy[T]) Next(ctx context.Context) (T, error) {
	var zero T

	for !l.done {
		rec, ok, err := l.next(ctx)
		if err != nil {
			return zero, err
		}

		if !ok {
			l.done = true
			break
		}

		if item, ok := l.match(rec); ok {
			return item, nil
		}

		if l.isStrayFetch(rec) {
			continue
		}

		if err := l.reroute(ctx, rec); err != nil {
			return zero, err
		}
	}

	return zero, stream.End
}

// Close stops the stream. The underlying record stream belongs to the caller and is left open.
func (l *lazy[T]) Close() {
	l.done = true
}
