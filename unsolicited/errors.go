package unsolicited

import (
	"errors"
	"fmt"

	"github.com/ProtonMail/imapclient/imap"
)

var ErrSinkClosed = errors.New("unsolicited event sink closed")

// UndeliveredError is returned when an event could not be delivered.
// The event is kept so that the caller can deliver it by other means.
type UndeliveredError struct {
	Event imap.UnsolicitedEvent
	Err   error
}

func (err *UndeliveredError) Error() string {
	return fmt.Sprintf("event %v not delivered: %v", err.Event, err.Err)
}

func (err *UndeliveredError) Unwrap() error {
	return err.Err
}
