package extract

import (
	"context"
	"testing"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/ProtonMail/imapclient/unsolicited"
	"github.com/bradenaw/juniper/stream"
	"github.com/bradenaw/juniper/xslices"
	"github.com/stretchr/testify/require"
)

// records parses the given lines into a record stream.
func records(t *testing.T, lines ...string) stream.Stream[*response.Record] {
	t.Helper()

	return response.FromRecords(xslices.Map(lines, func(line string) *response.Record {
		rec, err := response.Parse([]byte(line))
		require.NoError(t, err)

		return rec
	})...)
}

// drain closes the sink and returns everything that was sent to it.
func drain(sink *unsolicited.Sink) []imap.UnsolicitedEvent {
	sink.Close()

	var events []imap.UnsolicitedEvent

	for event := range sink.Events() {
		events = append(events, event)
	}

	return events
}

// requireNext asserts that the next record of the stream parses to want.
func requireNext(t *testing.T, s stream.Stream[*response.Record], want response.Parsed) {
	t.Helper()

	rec, err := s.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, rec.Parsed())
}

func TestCompletionOnly(t *testing.T) {
	ctx := context.Background()

	const done = "A1 OK done\r\n"

	sink := unsolicited.NewSink(10)

	caps, err := Capabilities(ctx, records(t, done), sink)
	require.NoError(t, err)
	require.Zero(t, caps.Len())

	ids, err := IDs(ctx, records(t, done), sink)
	require.NoError(t, err)
	require.Zero(t, ids.Len())

	state, err := Mailbox(ctx, records(t, done), sink)
	require.NoError(t, err)
	require.Equal(t, imap.NewMailboxState(), state)

	require.NoError(t, Noop(ctx, records(t, done), sink))

	names, err := stream.Collect(ctx, Names(records(t, done), sink))
	require.NoError(t, err)
	require.Empty(t, names)

	fetches, err := stream.Collect(ctx, Fetches(records(t, done), sink))
	require.NoError(t, err)
	require.Empty(t, fetches)

	expunges, err := stream.Collect(ctx, Expunges(records(t, done), sink))
	require.NoError(t, err)
	require.Empty(t, expunges)

	require.Empty(t, drain(sink))
}

func TestStreamEndWithoutCompletion(t *testing.T) {
	sink := unsolicited.NewSink(10)

	caps, err := Capabilities(context.Background(), records(t, "* CAPABILITY IMAP4rev1\r\n"), sink)
	require.NoError(t, err)
	require.True(t, caps.Has(imap.IMAP4rev1))
}
