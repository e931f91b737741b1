package response

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ProtonMail/imapclient/internal/liner"
	"github.com/ProtonMail/imapclient/reporter"
	"github.com/bradenaw/juniper/iterator"
	"github.com/bradenaw/juniper/stream"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Reader is a forward-only stream of the records sent by a server.
// Responses are framed in a background goroutine; a Next call that is cancelled leaves
// the pending response in place for the next call.
type Reader struct {
	id    string
	cfg   *config
	lines <-chan liner.Line
	done  chan struct{}
	log   logrus.FieldLogger

	closeOnce sync.Once
}

// NewReader returns a reader of the records sent on r.
// The framing goroutine exits when r returns an error; closing the reader alone does not
// interrupt a pending read on r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	cfg := newConfig(opts)
	id := uuid.NewString()
	done := make(chan struct{})

	return &Reader{
		id:    id,
		cfg:   cfg,
		lines: liner.New(r, cfg.limits).Lines(done),
		done:  done,
		log:   cfg.log.WithField("reader", id),
	}
}

// ID returns the identifier the reader logs with.
func (r *Reader) ID() string {
	return r.id
}

// Next returns the next record. It returns stream.End once the server closed the connection.
// A response that cannot be decoded is reported as an error but does not end the stream.
func (r *Reader) Next(ctx context.Context) (*Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()

	case <-r.done:
		return nil, stream.End

	case line, ok := <-r.lines:
		if !ok {
			return nil, stream.End
		}

		if line.Err != nil {
			if errors.Is(line.Err, io.EOF) {
				return nil, stream.End
			}

			r.log.WithError(line.Err).Error("Failed to read response")

			return nil, fmt.Errorf("failed to read response: %w", line.Err)
		}

		rec, err := parse(line.Raw, r.cfg.limits)
		if err != nil {
			r.log.WithError(err).WithField("raw", fmt.Sprintf("%q", line.Raw)).Warn("Failed to decode response")

			reporter.MessageWithContext(ctx, "Failed to decode response", reporter.Context{
				"reader": r.id,
				"error":  err.Error(),
			})

			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		r.log.WithField("record", rec).Trace("Read response")

		return rec, nil
	}
}

// Close stops the reader. Subsequent calls to Next return stream.End.
func (r *Reader) Close() {
	r.closeOnce.Do(func() { close(r.done) })
}

// FromRecords returns a stream of the given records.
func FromRecords(recs ...*Record) stream.Stream[*Record] {
	return stream.FromIterator(iterator.Slice(recs))
}
