package extract

import (
	"errors"
	"fmt"

	"github.com/ProtonMail/imapclient/imap/response"
)

var (
	ErrUnexpectedResponse  = errors.New("unexpected response")
	ErrProtocolInvariant   = errors.New("protocol invariant violated")
	ErrAuthenticationParse = errors.New("failed to parse authentication continuation")
)

// UnexpectedResponseError is returned when a record is neither part of the command's result nor unsolicited.
type UnexpectedResponseError struct {
	Record *response.Record
}

func (err *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnexpectedResponse, err.Record)
}

func (err *UnexpectedResponseError) Is(target error) bool {
	return target == ErrUnexpectedResponse
}

// InvariantViolationError is returned when a record breaks a guarantee of the response decoder.
// It is never the result of normal server behaviour and must not be retried.
type InvariantViolationError struct {
	Record *response.Record
	Reason string
}

func (err *InvariantViolationError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrProtocolInvariant, err.Reason, err.Record)
}

func (err *InvariantViolationError) Is(target error) bool {
	return target == ErrProtocolInvariant
}

// AuthenticationParseError is returned when a line is not a continuation request.
type AuthenticationParseError struct {
	Line string
}

func (err *AuthenticationParseError) Error() string {
	return fmt.Sprintf("%v: %q", ErrAuthenticationParse, err.Line)
}

func (err *AuthenticationParseError) Is(target error) bool {
	return target == ErrAuthenticationParse
}

func IsUnexpectedResponse(err error) bool {
	return errors.Is(err, ErrUnexpectedResponse)
}

func IsProtocolInvariant(err error) bool {
	return errors.Is(err, ErrProtocolInvariant)
}
