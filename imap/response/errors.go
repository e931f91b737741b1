package response

import "errors"

var (
	ErrUnsupportedResponse = errors.New("unsupported response")
	ErrMalformedResponse   = errors.New("malformed response")
)
