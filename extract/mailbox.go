package extract

import (
	"context"
	"fmt"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/bradenaw/juniper/stream"
	"golang.org/x/exp/slices"
)

// Mailbox accumulates the state reported by the response to SELECT or EXAMINE.
//
// EXISTS, RECENT and FLAGS describe the mailbox being selected and are not treated as unsolicited.
// STATUS and EXPUNGE responses concern other mailboxes or earlier state and are sent on the sink.
// An untagged status other than OK fails the call with an *InvariantViolationError.
func Mailbox(ctx context.Context, s stream.Stream[*response.Record], sink Sender, opts ...Option) (*imap.MailboxState, error) {
	x := newExtractor("mailbox", s, sink, opts)

	state := imap.NewMailboxState()

	for {
		rec, ok, err := x.next(ctx)
		if err != nil {
			return nil, err
		} else if !ok {
			return state, nil
		}

		switch parsed := rec.Parsed().(type) {
		case *response.Data:
			if parsed.Status != response.StatusOK {
				return nil, x.violation(ctx, rec, fmt.Sprintf("untagged %v in mailbox response", parsed.Status))
			}

			applyCode(state, parsed.Code)

		case *response.Exists:
			state.Exists = parsed.Count

		case *response.Recent:
			state.Recent = parsed.Count

		case *response.Flags:
			state.Flags = state.Flags.Add(parsed.Flags...)

		case *response.Status:
			if err := x.forward(ctx, &imap.StatusPush{Mailbox: parsed.Mailbox, Attributes: slices.Clone(parsed.Items)}); err != nil {
				return nil, err
			}

		case *response.Expunge:
			if err := x.forward(ctx, &imap.Expunged{SeqNum: parsed.SeqNum}); err != nil {
				return nil, err
			}

		default:
			return nil, x.unexpected(ctx, rec)
		}
	}
}

// applyCode updates the state from a response code. Codes that carry no mailbox state are ignored.
func applyCode(state *imap.MailboxState, code response.Code) {
	switch code := code.(type) {
	case *response.CodeUIDValidity:
		uidValidity := code.UIDValidity
		state.UIDValidity = &uidValidity

	case *response.CodeUIDNext:
		uidNext := code.UIDNext
		state.UIDNext = &uidNext

	case *response.CodeUnseen:
		unseen := code.SeqNum
		state.Unseen = &unseen

	case *response.CodePermanentFlags:
		state.PermanentFlags = state.PermanentFlags.Add(code.Flags...)
	}
}
