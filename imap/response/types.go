// Package response implements the typed form of IMAP server responses received by the client.
//
// The byte-level grammar is handled by go-imap's Reader; this package turns its generic fields into a
// closed set of response shapes and frames them, together with their raw bytes, as Records.
package response

import (
	goimap "github.com/emersion/go-imap"
)

// Parsed is the structured form of a server response. The set of implementations is closed.
type Parsed interface {
	String() string

	_isParsed()
}

type parsedBase struct{}

func (parsedBase) _isParsed() {}

// MailboxDatum is the subset of parsed responses that carry mailbox data (RFC 3501 section 7.2 and 7.3).
type MailboxDatum interface {
	Parsed

	_isMailboxDatum()
}

type mailboxDatumBase struct {
	parsedBase
}

func (mailboxDatumBase) _isMailboxDatum() {}

// StatusType is the status of a status response.
type StatusType = goimap.StatusRespType

const (
	StatusOK      = goimap.StatusRespOk
	StatusNo      = goimap.StatusRespNo
	StatusBad     = goimap.StatusRespBad
	StatusPreauth = goimap.StatusRespPreauth
	StatusBye     = goimap.StatusRespBye
)
