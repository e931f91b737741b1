package unsolicited

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSink(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := NewSink(3)

	require.NoError(t, sink.Send(context.Background(), &imap.ExistsCount{Count: 1}))
	require.NoError(t, sink.Send(context.Background(), &imap.RecentCount{Count: 2}))
	require.NoError(t, sink.Send(context.Background(), &imap.Expunged{SeqNum: 3}))
	require.Equal(t, 3, sink.Len())

	event, err := sink.Recv(context.Background())
	require.NoError(t, err)
	require.Equal(t, &imap.ExistsCount{Count: 1}, event)

	// Close the sink before reading the remaining events.
	sink.Close()

	// Events sent before closing are still delivered, in order.
	require.Equal(t, &imap.RecentCount{Count: 2}, <-sink.Events())
	require.Equal(t, &imap.Expunged{SeqNum: 3}, <-sink.Events())

	_, err = sink.Recv(context.Background())
	require.ErrorIs(t, err, ErrSinkClosed)

	// Sending after the sink is closed fails but hands the event back.
	err = sink.Send(context.Background(), &imap.ExistsCount{Count: 4})

	var undelivered *UndeliveredError

	require.True(t, errors.As(err, &undelivered))
	require.ErrorIs(t, err, ErrSinkClosed)
	require.Equal(t, &imap.ExistsCount{Count: 4}, undelivered.Event)
}

func TestSinkSendBlocksWhileFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := NewSink(1)
	defer sink.Close()

	require.NoError(t, sink.Send(context.Background(), &imap.ExistsCount{Count: 1}))

	sent := make(chan error)

	go func() {
		sent <- sink.Send(context.Background(), &imap.ExistsCount{Count: 2})
	}()

	select {
	case <-sent:
		t.Fatal("send should wait for room")

	case <-time.After(50 * time.Millisecond):
	}

	event, err := sink.Recv(context.Background())
	require.NoError(t, err)
	require.Equal(t, &imap.ExistsCount{Count: 1}, event)

	require.NoError(t, <-sent)

	event, err = sink.Recv(context.Background())
	require.NoError(t, err)
	require.Equal(t, &imap.ExistsCount{Count: 2}, event)
}

func TestSinkSendCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := NewSink(1)
	defer sink.Close()

	require.NoError(t, sink.Send(context.Background(), &imap.ExistsCount{Count: 1}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := sink.Send(ctx, &imap.RecentCount{Count: 7})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	var undelivered *UndeliveredError

	require.True(t, errors.As(err, &undelivered))
	assert.Equal(t, &imap.RecentCount{Count: 7}, undelivered.Event)
	assert.Equal(t, 1, sink.Len())
}

func TestSinkCloseReleasesWaitingSenders(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := NewSink(1)

	require.NoError(t, sink.Send(context.Background(), &imap.ExistsCount{Count: 1}))

	var wg sync.WaitGroup

	errs := make([]error, 3)

	for i := range errs {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			errs[i] = sink.Send(context.Background(), &imap.Expunged{SeqNum: imap.SeqID(i)})
		}()
	}

	time.Sleep(50 * time.Millisecond)

	sink.Close()
	wg.Wait()

	for _, err := range errs {
		require.ErrorIs(t, err, ErrSinkClosed)
	}

	require.Equal(t, &imap.ExistsCount{Count: 1}, <-sink.Events())
}

func TestSinkRecvCancelled(t *testing.T) {
	sink := NewSink(1)
	defer sink.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sink.Recv(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, sink.Cap())
}
