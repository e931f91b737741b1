package imap

import "strconv"

// UID is a message unique identifier, stable for the lifetime of a UIDVALIDITY value.
type UID uint32

func (u UID) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// SeqID is a message sequence number. Sequence numbers shift when messages are expunged.
type SeqID uint32

func (s SeqID) String() string {
	return strconv.FormatUint(uint64(s), 10)
}
