package imap

import (
	"fmt"

	"github.com/bradenaw/juniper/xslices"
)

// UnsolicitedEvent is a server-pushed state change (RFC 3501 section 7) that does not belong to the
// outstanding command. The set of events is closed.
type UnsolicitedEvent interface {
	String() string

	_isUnsolicitedEvent()
}

type eventBase struct{}

func (eventBase) _isUnsolicitedEvent() {}

// StatusPush reports the status of a mailbox.
type StatusPush struct {
	eventBase

	Mailbox    string
	Attributes []StatusAttribute
}

func (e *StatusPush) String() string {
	return fmt.Sprintf("StatusPush: Mailbox = %v, Attributes = %v",
		e.Mailbox,
		xslices.Map(e.Attributes, func(a StatusAttribute) string {
			return a.String()
		}),
	)
}

// Attribute returns the value of the given item, if it was reported.
func (e *StatusPush) Attribute(item StatusItem) (uint32, bool) {
	for _, attr := range e.Attributes {
		if attr.Item == item {
			return attr.Value, true
		}
	}

	return 0, false
}

// RecentCount reports the number of messages with the \Recent flag.
type RecentCount struct {
	eventBase

	Count uint32
}

func (e *RecentCount) String() string {
	return fmt.Sprintf("RecentCount: Count = %v", e.Count)
}

// ExistsCount reports the number of messages in the selected mailbox.
type ExistsCount struct {
	eventBase

	Count uint32
}

func (e *ExistsCount) String() string {
	return fmt.Sprintf("ExistsCount: Count = %v", e.Count)
}

// Expunged reports that the message with the given sequence number was removed.
type Expunged struct {
	eventBase

	SeqNum SeqID
}

func (e *Expunged) String() string {
	return fmt.Sprintf("Expunged: SeqNum = %v", e.SeqNum)
}
