package imap

import (
	"fmt"

	"github.com/bradenaw/juniper/xslices"
	goimap "github.com/emersion/go-imap"
)

const Inbox = goimap.InboxName

// Name is one entry of a LIST or LSUB response.
type Name struct {
	Attributes []NameAttribute

	// Delimiter is the hierarchy separator; empty if the server sent NIL.
	Delimiter string

	// Name is the mailbox path exactly as sent by the server.
	Name string
}

// HasAttribute returns true if the entry carries the given attribute.
func (n Name) HasAttribute(attr NameAttribute) bool {
	return xslices.Index(n.Attributes, attr) >= 0
}

func (n Name) String() string {
	return fmt.Sprintf("Name: %q (delimiter %q, attributes %v)", n.Name, n.Delimiter, n.Attributes)
}

// MailboxState is the summary of a mailbox accumulated from a SELECT or EXAMINE response.
// Optional fields are nil until the server reports them.
type MailboxState struct {
	Exists uint32
	Recent uint32

	Flags          FlagSet
	PermanentFlags FlagSet

	UIDValidity *UID
	UIDNext     *UID

	// Unseen is the sequence number of the first unseen message.
	Unseen *SeqID
}

func NewMailboxState() *MailboxState {
	return &MailboxState{
		Flags:          NewFlagSet(),
		PermanentFlags: NewFlagSet(),
	}
}

// Clone returns a deep copy of the state.
func (m *MailboxState) Clone() *MailboxState {
	clone := &MailboxState{
		Exists:         m.Exists,
		Recent:         m.Recent,
		Flags:          NewFlagSet().AddFlagSet(m.Flags),
		PermanentFlags: NewFlagSet().AddFlagSet(m.PermanentFlags),
	}

	if m.UIDValidity != nil {
		uidValidity := *m.UIDValidity
		clone.UIDValidity = &uidValidity
	}

	if m.UIDNext != nil {
		uidNext := *m.UIDNext
		clone.UIDNext = &uidNext
	}

	if m.Unseen != nil {
		unseen := *m.Unseen
		clone.Unseen = &unseen
	}

	return clone
}

func (m *MailboxState) String() string {
	return fmt.Sprintf("MailboxState: Exists = %v, Recent = %v, Flags = %v, PermanentFlags = %v, UIDValidity = %v, UIDNext = %v, Unseen = %v",
		m.Exists,
		m.Recent,
		m.Flags.ToSlice(),
		m.PermanentFlags.ToSlice(),
		optionalString(m.UIDValidity),
		optionalString(m.UIDNext),
		optionalString(m.Unseen),
	)
}

func optionalString[T fmt.Stringer](v *T) string {
	if v == nil {
		return "-"
	}

	return (*v).String()
}
