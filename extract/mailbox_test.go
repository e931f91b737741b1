package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/reporter"
	"github.com/ProtonMail/imapclient/reporter/mock_reporter"
	"github.com/ProtonMail/imapclient/unsolicited"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailbox(t *testing.T) {
	sink := unsolicited.NewSink(10)

	state, err := Mailbox(context.Background(), records(t,
		"* 172 EXISTS\r\n",
		"* 1 RECENT\r\n",
		"* OK [UNSEEN 12] Message 12 is first unseen\r\n",
		"* OK [UIDVALIDITY 3857529045] UIDs valid\r\n",
		"* OK [UIDNEXT 4392] Predicted next UID\r\n",
		"* FLAGS (\\Answered \\Flagged \\Deleted \\Seen \\Draft)\r\n",
		"* OK [PERMANENTFLAGS (\\Deleted \\Seen \\*)] Limited\r\n",
		"* STATUS other (MESSAGES 3)\r\n",
		"* 4 EXPUNGE\r\n",
		"* OK [HIGHESTMODSEQ 715194045007] Highest\r\n",
		"* OK Still here\r\n",
		"A142 OK [READ-WRITE] SELECT completed\r\n",
	), sink)
	require.NoError(t, err)

	assert.Equal(t, uint32(172), state.Exists)
	assert.Equal(t, uint32(1), state.Recent)
	assert.Equal(t, imap.SeqID(12), *state.Unseen)
	assert.Equal(t, imap.UID(3857529045), *state.UIDValidity)
	assert.Equal(t, imap.UID(4392), *state.UIDNext)
	assert.True(t, state.Flags.Equals(imap.NewFlagSet(imap.FlagAnswered, imap.FlagFlagged, imap.FlagDeleted, imap.FlagSeen, imap.FlagDraft)))
	assert.True(t, state.PermanentFlags.Equals(imap.NewFlagSet(imap.FlagDeleted, imap.FlagSeen, imap.FlagWildcard)))
	assert.True(t, state.PermanentFlags.AllowsKeywords())

	require.Equal(t, []imap.UnsolicitedEvent{
		&imap.StatusPush{Mailbox: "other", Attributes: []imap.StatusAttribute{{Item: imap.StatusMessages, Value: 3}}},
		&imap.Expunged{SeqNum: 4},
	}, drain(sink))
}

func TestMailboxLastCountWins(t *testing.T) {
	state, err := Mailbox(context.Background(), records(t,
		"* 1 EXISTS\r\n",
		"* 2 EXISTS\r\n",
		"* FLAGS (\\Seen)\r\n",
		"* FLAGS (\\Draft)\r\n",
		"A1 OK done\r\n",
	), unsolicited.NewSink(10))
	require.NoError(t, err)

	assert.Equal(t, uint32(2), state.Exists)
	assert.Nil(t, state.UIDValidity)
	assert.True(t, state.Flags.ContainsAll(imap.FlagSeen, imap.FlagDraft))
}

func TestMailboxInvariantViolation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rep := mock_reporter.NewMockReporter(ctl)
	rep.EXPECT().ReportExceptionWithContext("Protocol invariant violated", gomock.Any()).Return(nil)

	ctx := reporter.NewContextWithReporter(context.Background(), rep)

	_, err := Mailbox(ctx, records(t,
		"* 3 EXISTS\r\n",
		"* NO [ALERT] Mailbox is over quota\r\n",
		"A1 OK done\r\n",
	), unsolicited.NewSink(10))
	require.True(t, IsProtocolInvariant(err))
	require.False(t, IsUnexpectedResponse(err))

	var violation *InvariantViolationError
	require.True(t, errors.As(err, &violation))
	require.Equal(t, []byte("* NO [ALERT] Mailbox is over quota\r\n"), violation.Record.Raw())
}

func TestMailboxUnexpected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	rep := mock_reporter.NewMockReporter(ctl)
	rep.EXPECT().ReportMessageWithContext("Unexpected response", gomock.Any()).Return(nil)

	ctx := reporter.NewContextWithReporter(context.Background(), rep)

	_, err := Mailbox(ctx, records(t,
		"* LIST () \"/\" INBOX\r\n",
		"A1 OK done\r\n",
	), unsolicited.NewSink(10))
	require.ErrorIs(t, err, ErrUnexpectedResponse)
}
