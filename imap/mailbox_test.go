package imap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNameAttribute(t *testing.T) {
	require.Equal(t, AttrHasNoChildren, NewNameAttribute(`\hasnochildren`))
	require.False(t, NewNameAttribute(`\NOSELECT`).IsExtension())

	ext := NewNameAttribute(`\XSomething`)
	require.Equal(t, NameAttribute(`\XSomething`), ext)
	require.True(t, ext.IsExtension())
}

func TestName_HasAttribute(t *testing.T) {
	name := Name{
		Attributes: []NameAttribute{AttrHasNoChildren, AttrSent},
		Delimiter:  "/",
		Name:       "Sent",
	}

	require.True(t, name.HasAttribute(AttrSent))
	require.False(t, name.HasAttribute(AttrNoSelect))
}

func TestMailboxState_Clone(t *testing.T) {
	uidNext := UID(42)

	state := NewMailboxState()
	state.Exists = 3
	state.Flags = state.Flags.Add(FlagSeen)
	state.UIDNext = &uidNext

	clone := state.Clone()
	require.Equal(t, state, clone)

	*clone.UIDNext = 43
	clone.Flags = clone.Flags.Add(FlagDraft)

	require.Equal(t, UID(42), *state.UIDNext)
	require.False(t, state.Flags.Contains(FlagDraft))
	require.Nil(t, clone.UIDValidity)
}

func TestIDSet(t *testing.T) {
	set := NewIDSet(4711, 23, 42, 23)

	require.Equal(t, 3, set.Len())
	require.True(t, set.Contains(42))
	require.False(t, set.Contains(43))
	require.Equal(t, []uint32{23, 42, 4711}, set.ToSlice())
}

func TestStatusPush_Attribute(t *testing.T) {
	item, ok := ParseStatusItem("uidnext")
	require.True(t, ok)
	require.Equal(t, StatusUIDNext, item)

	_, ok = ParseStatusItem("RECENT")
	require.False(t, ok)

	push := &StatusPush{
		Mailbox:    "INBOX",
		Attributes: []StatusAttribute{{Item: StatusMessages, Value: 10}},
	}

	n, ok := push.Attribute(StatusMessages)
	require.True(t, ok)
	require.Equal(t, uint32(10), n)

	_, ok = push.Attribute(StatusUnseen)
	require.False(t, ok)
}
