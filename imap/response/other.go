package response

import (
	"fmt"
	"io"

	"github.com/ProtonMail/imapclient/imap"
	goimap "github.com/emersion/go-imap"
)

type Expunge struct {
	parsedBase

	SeqNum imap.SeqID
}

func (r *Expunge) String() string {
	return fmt.Sprintf("Expunge: %v", r.SeqNum)
}

type Capabilities struct {
	parsedBase

	Caps []imap.Capability
}

func (r *Capabilities) String() string {
	return fmt.Sprintf("Capabilities: %v", r.Caps)
}

// IDs is a SEARCH response. The ids are sequence numbers or UIDs depending on the command.
type IDs struct {
	parsedBase

	IDs []uint32
}

func (r *IDs) String() string {
	return fmt.Sprintf("IDs: %v", r.IDs)
}

// Other is an untagged response of a kind the client does not interpret.
// Literals among its fields are read into byte slices.
type Other struct {
	parsedBase

	Name   string
	Fields []any
}

func (r *Other) String() string {
	return fmt.Sprintf("Other: Name = %v, Fields = %v", r.Name, r.Fields)
}

func decodeExpunge(fields []any) (Parsed, error) {
	n, err := decodeLeadingNumber("EXPUNGE", fields)
	if err != nil {
		return nil, err
	}

	return &Expunge{SeqNum: imap.SeqID(n)}, nil
}

func decodeCapabilityData(fields []any) (Parsed, error) {
	caps, err := decodeCapabilities(fields)
	if err != nil {
		return nil, err
	}

	return &Capabilities{Caps: caps}, nil
}

func decodeSearch(fields []any) (Parsed, error) {
	ids := make([]uint32, 0, len(fields))

	for _, f := range fields {
		id, err := goimap.ParseNumber(f)
		if err != nil {
			return nil, fmt.Errorf("%w: SEARCH: %v", ErrMalformedResponse, err)
		}

		ids = append(ids, id)
	}

	return &IDs{IDs: ids}, nil
}

func decodeCapabilities(fields []any) ([]imap.Capability, error) {
	caps := make([]imap.Capability, 0, len(fields))

	for _, f := range fields {
		c, err := goimap.ParseString(f)
		if err != nil {
			return nil, fmt.Errorf("%w: CAPABILITY: %v", ErrMalformedResponse, err)
		}

		caps = append(caps, imap.Capability(c))
	}

	return caps, nil
}

func freezeFields(fields []any) ([]any, error) {
	frozen := make([]any, 0, len(fields))

	for _, f := range fields {
		v, err := freeze(f)
		if err != nil {
			return nil, err
		}

		frozen = append(frozen, v)
	}

	return frozen, nil
}

// freeze replaces literals, which can only be read once, with their bytes.
func freeze(field any) (any, error) {
	switch f := field.(type) {
	case goimap.Literal:
		return io.ReadAll(f)

	case []any:
		return freezeFields(f)

	default:
		return f, nil
	}
}
