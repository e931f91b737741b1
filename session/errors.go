package session

import (
	"errors"
	"fmt"

	"github.com/ProtonMail/imapclient/imap/response"
)

var (
	ErrNotCompletion = errors.New("record is not a command completion")
	ErrTagMismatch   = errors.New("completion tag does not match the command")
)

// CompletionError is returned when the server completed the command with NO or BAD.
type CompletionError struct {
	Status response.StatusType
	Code   response.Code
	Info   string
}

func (err *CompletionError) Error() string {
	if err.Code != nil {
		return fmt.Sprintf("command failed: %v [%v] %v", err.Status, err.Code, err.Info)
	}

	return fmt.Sprintf("command failed: %v %v", err.Status, err.Info)
}

// IsRejected returns true if the server refused the command (NO) rather than failing to understand it (BAD).
func (err *CompletionError) IsRejected() bool {
	return err.Status == response.StatusNo
}
