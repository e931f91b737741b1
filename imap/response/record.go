package response

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/ProtonMail/imapclient/limits"
	goimap "github.com/emersion/go-imap"
	"golang.org/x/exp/slices"
)

const maxStringLength = 120

// Record is one complete server response: the bytes as received and their parsed form.
// A Record is immutable.
type Record struct {
	raw    []byte
	parsed Parsed
}

// NewRecord returns a record with the given bytes and parsed form.
func NewRecord(raw []byte, parsed Parsed) *Record {
	return &Record{raw: slices.Clone(raw), parsed: parsed}
}

// Parse decodes one complete response, including its trailing CRLF and any literals.
func Parse(raw []byte, opts ...Option) (*Record, error) {
	cfg := newConfig(opts)

	return parse(raw, cfg.limits)
}

func parse(raw []byte, limits limits.Response) (*Record, error) {
	if err := limits.CheckResponseLength(len(raw)); err != nil {
		return nil, err
	}

	r := goimap.NewReader(bufio.NewReader(bytes.NewReader(raw)))
	r.MaxLiteralSize = limits.MaxLiteralSize()

	resp, err := goimap.ReadResp(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	parsed, err := decode(resp)
	if err != nil {
		return nil, err
	}

	return NewRecord(raw, parsed), nil
}

// Raw returns a copy of the bytes the record was parsed from.
func (r *Record) Raw() []byte {
	return slices.Clone(r.raw)
}

func (r *Record) Parsed() Parsed {
	return r.parsed
}

// IsCompletion returns true if the record terminates the response of a command.
func (r *Record) IsCompletion() bool {
	_, ok := r.parsed.(*Completion)
	return ok
}

func (r *Record) String() string {
	s := string(bytes.TrimRight(r.raw, "\r\n"))

	if len(s) > maxStringLength {
		s = s[:maxStringLength] + "..."
	}

	return fmt.Sprintf("%q", s)
}
