package limits

import (
	"errors"
	"fmt"
)

// Response contains configurable upper limits enforced while reading server responses.
type Response struct {
	maxLiteralSize    uint32
	maxResponseLength int
}

// MaxLiteralSize returns the largest literal the client accepts.
func (r Response) MaxLiteralSize() uint32 {
	return r.maxLiteralSize
}

// MaxResponseLength returns the longest framed response, literals included, the client accepts.
func (r Response) MaxResponseLength() int {
	return r.maxResponseLength
}

func (r Response) CheckLiteralSize(size int) error {
	if size < 0 || int64(size) > int64(r.maxLiteralSize) {
		return ErrMaxLiteralSizeExceeded
	}

	return nil
}

func (r Response) CheckResponseLength(length int) error {
	if length > r.maxResponseLength {
		return ErrMaxResponseLengthExceeded
	}

	return nil
}

func DefaultResponseLimits() Response {
	return Response{
		maxLiteralSize:    64 * 1024 * 1024,
		maxResponseLength: 128 * 1024 * 1024,
	}
}

func NewResponseLimits(maxLiteralSize uint32, maxResponseLength int) Response {
	return Response{
		maxLiteralSize:    maxLiteralSize,
		maxResponseLength: maxResponseLength,
	}
}

var ErrMaxLiteralSizeExceeded = fmt.Errorf("max literal size exceeded")
var ErrMaxResponseLengthExceeded = fmt.Errorf("max response length exceeded")

func IsResponseLimitErr(err error) bool {
	return errors.Is(err, ErrMaxLiteralSizeExceeded) ||
		errors.Is(err, ErrMaxResponseLengthExceeded)
}
