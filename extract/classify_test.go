package extract

import (
	"context"
	"testing"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/ProtonMail/imapclient/observability"
	"github.com/ProtonMail/imapclient/observability/metrics"
	"github.com/ProtonMail/imapclient/unsolicited"
	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/generic"
	"github.com/stretchr/testify/require"
)

func parseRecord(t *testing.T, line string) *response.Record {
	t.Helper()

	rec, err := response.Parse([]byte(line))
	require.NoError(t, err)

	return rec
}

func TestClassify(t *testing.T) {
	tests := map[string]imap.UnsolicitedEvent{
		"* 3 EXISTS\r\n":   &imap.ExistsCount{Count: 3},
		"* 0 RECENT\r\n":   &imap.RecentCount{Count: 0},
		"* 17 EXPUNGE\r\n": &imap.Expunged{SeqNum: 17},
		"* STATUS INBOX (UNSEEN 2 UIDVALIDITY 9)\r\n": &imap.StatusPush{Mailbox: "INBOX", Attributes: []imap.StatusAttribute{
			{Item: imap.StatusUnseen, Value: 2},
			{Item: imap.StatusUIDValidity, Value: 9},
		}},
	}

	for line, want := range tests {
		sink := unsolicited.NewSink(1)

		event, ok, err := Classify(context.Background(), parseRecord(t, line), sink)
		require.NoError(t, err, line)
		require.True(t, ok, line)
		require.Equal(t, want, event, line)

		require.Equal(t, []imap.UnsolicitedEvent{want}, drain(sink), line)
	}
}

func TestClassifyNotUnsolicited(t *testing.T) {
	for _, line := range []string{
		"* 1 FETCH (UID 1)\r\n",
		"* LIST () \"/\" INBOX\r\n",
		"* CAPABILITY IMAP4rev1\r\n",
		"* SEARCH 1 2\r\n",
		"* FLAGS (\\Seen)\r\n",
		"* OK [UIDNEXT 3] Predicted\r\n",
		"* BYE Logging out\r\n",
		"+ Ready\r\n",
		"A1 OK done\r\n",
	} {
		sink := unsolicited.NewSink(1)

		event, ok, err := Classify(context.Background(), parseRecord(t, line), sink)
		require.NoError(t, err, line)
		require.False(t, ok, line)
		require.Nil(t, event, line)

		require.Empty(t, drain(sink), line)
	}
}

func TestClassifyUndelivered(t *testing.T) {
	sink := unsolicited.NewSink(1)
	sink.Close()

	event, ok, err := Classify(context.Background(), parseRecord(t, "* 2 EXISTS\r\n"), sink)
	require.ErrorIs(t, err, unsolicited.ErrSinkClosed)
	require.True(t, ok)
	require.Equal(t, &imap.ExistsCount{Count: 2}, event)
}

func TestExtractorMetrics(t *testing.T) {
	var (
		rerouted   = generic.NewCounter("rerouted")
		unexpected = generic.NewCounter("unexpected")
	)

	// Labelled counters are copied by With, so count through a counter that ignores labels.
	m := &metrics.Metrics{
		RecordsRerouted:     unlabelled{rerouted},
		UndeliveredEvents:   generic.NewCounter("undelivered"),
		UnexpectedResponses: unlabelled{unexpected},
		InvariantViolations: generic.NewCounter("violations"),
	}

	ctx := observability.NewContextWithMetrics(context.Background(), m)

	_, err := IDs(ctx, records(t,
		"* 1 EXISTS\r\n",
		"* 1 RECENT\r\n",
		"* SEARCH 1\r\n",
		"* ENABLED X\r\n",
		"A1 OK done\r\n",
	), unsolicited.NewSink(10))
	require.ErrorIs(t, err, ErrUnexpectedResponse)

	require.Equal(t, 2.0, rerouted.Value())
	require.Equal(t, 1.0, unexpected.Value())
}

type unlabelled struct {
	*generic.Counter
}

func (c unlabelled) With(...string) kitmetrics.Counter {
	return c
}
