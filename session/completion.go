// Package session holds what a client keeps across commands: completion checks
// and the view of the selected mailbox kept up to date by unsolicited events.
package session

import (
	"fmt"

	"github.com/ProtonMail/imapclient/imap/response"
)

// CheckCompletion verifies that rec completes the command sent with the given tag, and that it succeeded.
func CheckCompletion(tag string, rec *response.Record) error {
	completion, ok := rec.Parsed().(*response.Completion)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotCompletion, rec)
	}

	if completion.Tag != tag {
		return fmt.Errorf("%w: sent %q, got %q", ErrTagMismatch, tag, completion.Tag)
	}

	if completion.Status != response.StatusOK {
		return &CompletionError{
			Status: completion.Status,
			Code:   completion.Code,
			Info:   completion.Info,
		}
	}

	return nil
}
