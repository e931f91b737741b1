// Package unsolicited implements the bounded channel on which unsolicited server events are delivered.
package unsolicited

import (
	"context"
	"sync"

	"github.com/ProtonMail/imapclient/imap"
)

// Sink is a bounded channel of unsolicited events with any number of producers and consumers.
// A producer sending on a full sink waits until a consumer makes room.
type Sink struct {
	ch     chan imap.UnsolicitedEvent
	closed chan struct{}

	// lock keeps ch open while senders are inside Send.
	lock      sync.RWMutex
	closeOnce sync.Once
}

// NewSink returns a sink that holds up to capacity undelivered events.
func NewSink(capacity int) *Sink {
	return &Sink{
		ch:     make(chan imap.UnsolicitedEvent, capacity),
		closed: make(chan struct{}),
	}
}

// Send delivers the event, waiting while the sink is full.
// If ctx ends or the sink is closed first, the event is returned in an *UndeliveredError.
func (s *Sink) Send(ctx context.Context, event imap.UnsolicitedEvent) error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	select {
	case <-s.closed:
		return &UndeliveredError{Event: event, Err: ErrSinkClosed}

	default:
	}

	select {
	case s.ch <- event:
		return nil

	case <-ctx.Done():
		return &UndeliveredError{Event: event, Err: ctx.Err()}

	case <-s.closed:
		return &UndeliveredError{Event: event, Err: ErrSinkClosed}
	}
}

// Recv returns the next event. Events sent before the sink was closed are still returned;
// once they are drained, Recv returns ErrSinkClosed.
func (s *Sink) Recv(ctx context.Context) (imap.UnsolicitedEvent, error) {
	select {
	case event, ok := <-s.ch:
		if !ok {
			return nil, ErrSinkClosed
		}

		return event, nil

	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Events returns the channel events are delivered on. It is closed once the sink is closed.
func (s *Sink) Events() <-chan imap.UnsolicitedEvent {
	return s.ch
}

// Len returns the number of events waiting to be received.
func (s *Sink) Len() int {
	return len(s.ch)
}

// Cap returns the number of events the sink holds before senders wait.
func (s *Sink) Cap() int {
	return cap(s.ch)
}

// Close closes the sink. Senders waiting for room are released with ErrSinkClosed.
func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)

		s.lock.Lock()
		defer s.lock.Unlock()

		close(s.ch)
	})
}
