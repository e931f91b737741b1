// Package extract turns the records received for one command into the command's result.
//
// Records that are not part of the result are offered to the unilateral classifier: server pushes
// described in RFC 3501 section 7 (STATUS, RECENT, EXISTS, EXPUNGE) are delivered on the unsolicited
// event sink; anything else is unexpected. Every extractor stops at the completion record.
package extract

//go:generate mockgen -destination mock_extract/sender.go . Sender
