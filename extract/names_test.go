package extract

import (
	"context"
	"testing"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/ProtonMail/imapclient/unsolicited"
	"github.com/bradenaw/juniper/stream"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	sink := unsolicited.NewSink(10)

	names, err := stream.Collect(context.Background(), Names(records(t,
		"* LIST (\\Noselect) \"/\" ~/Mail/foo\r\n",
		"* 1 EXPUNGE\r\n",
		"* LIST (\\HasNoChildren \\Sent) \".\" Sent\r\n",
		"A1 OK LIST completed\r\n",
	), sink))
	require.NoError(t, err)

	require.Equal(t, []imap.Name{
		{Attributes: []imap.NameAttribute{imap.AttrNoSelect}, Delimiter: "/", Name: "~/Mail/foo"},
		{Attributes: []imap.NameAttribute{imap.AttrHasNoChildren, imap.AttrSent}, Delimiter: ".", Name: "Sent"},
	}, names)

	require.Equal(t, []imap.UnsolicitedEvent{&imap.Expunged{SeqNum: 1}}, drain(sink))
}

func TestNamesInterleaved(t *testing.T) {
	sink := unsolicited.NewSink(10)

	s := Names(records(t,
		"* LSUB () \"/\" a\r\n",
		"* 5 EXISTS\r\n",
		"* LSUB () \"/\" b\r\n",
		"A1 OK done\r\n",
	), sink)
	defer s.Close()

	name, err := s.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, "a", name.Name)
	require.Zero(t, sink.Len())

	name, err = s.Next(context.Background())
	require.NoError(t, err)
	require.Equal(t, "b", name.Name)
	require.Equal(t, 1, sink.Len())
}

func TestNamesUnexpectedFailsOneItem(t *testing.T) {
	s := Names(records(t,
		"* LIST () \"/\" a\r\n",
		"* 1 FETCH (FLAGS ())\r\n",
		"* LIST () \"/\" b\r\n",
		"A1 OK done\r\n",
	), unsolicited.NewSink(10))
	defer s.Close()

	ctx := context.Background()

	name, err := s.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, "a", name.Name)

	_, err = s.Next(ctx)
	require.True(t, IsUnexpectedResponse(err))

	name, err = s.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, "b", name.Name)

	_, err = s.Next(ctx)
	require.ErrorIs(t, err, stream.End)
}

func TestNamesStrayFetchesIgnored(t *testing.T) {
	sink := unsolicited.NewSink(10)

	names, err := stream.Collect(context.Background(), Names(records(t,
		"* LIST () \"/\" a\r\n",
		"* 1 FETCH (FLAGS ())\r\n",
		"* LIST () \"/\" b\r\n",
		"A1 OK done\r\n",
	), sink, WithStrayFetchesIgnored()))
	require.NoError(t, err)

	require.Len(t, names, 2)
	require.Empty(t, drain(sink))
}

func TestNamesStrayFetchesIgnoredOnlyFetches(t *testing.T) {
	_, err := stream.Collect(context.Background(), Names(records(t,
		"* SEARCH 1\r\n",
		"A1 OK done\r\n",
	), unsolicited.NewSink(10), WithStrayFetchesIgnored()))
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestNamesStopAtCompletion(t *testing.T) {
	records := records(t,
		"* LIST () \"/\" a\r\n",
		"A1 OK done\r\n",
		"* 2 EXISTS\r\n",
	)

	s := Names(records, unsolicited.NewSink(10))

	_, err := stream.Collect(context.Background(), s)
	require.NoError(t, err)

	// Exhausted: the stream does not read past the completion.
	_, err = s.Next(context.Background())
	require.ErrorIs(t, err, stream.End)

	requireNext(t, records, &response.Exists{Count: 2})
}

func TestNamesClose(t *testing.T) {
	records := records(t,
		"* LIST () \"/\" a\r\n",
		"* LIST () \"/\" b\r\n",
		"A1 OK done\r\n",
	)

	s := Names(records, unsolicited.NewSink(10))

	_, err := s.Next(context.Background())
	require.NoError(t, err)

	s.Close()

	_, err = s.Next(context.Background())
	require.ErrorIs(t, err, stream.End)

	rec, err := records.Next(context.Background())
	require.NoError(t, err)

	list, ok := rec.Parsed().(*response.List)
	require.True(t, ok)
	require.Equal(t, "b", list.Name)
}
