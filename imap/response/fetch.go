package response

import (
	"fmt"
	"strings"
	"time"

	"github.com/ProtonMail/imapclient/imap"
	goimap "github.com/emersion/go-imap"
)

// Fetch is a FETCH response: the attributes of the message with the given sequence number.
type Fetch struct {
	parsedBase

	SeqNum     imap.SeqID
	Attributes []FetchAttribute
}

func (r *Fetch) String() string {
	return fmt.Sprintf("Fetch: SeqNum = %v, Attributes = %v", r.SeqNum, r.Attributes)
}

// FetchAttribute is one item of a FETCH response. The set of implementations is closed;
// items without a dedicated type are kept as AttrOther.
type FetchAttribute interface {
	String() string

	_isFetchAttribute()
}

type fetchAttributeBase struct{}

func (fetchAttributeBase) _isFetchAttribute() {}

type AttrFlags struct {
	fetchAttributeBase

	Flags []string
}

func (a *AttrFlags) String() string {
	return fmt.Sprintf("FLAGS %v", a.Flags)
}

type AttrUID struct {
	fetchAttributeBase

	UID imap.UID
}

func (a *AttrUID) String() string {
	return fmt.Sprintf("UID %v", a.UID)
}

type AttrRFC822Size struct {
	fetchAttributeBase

	Size uint32
}

func (a *AttrRFC822Size) String() string {
	return fmt.Sprintf("RFC822.SIZE %v", a.Size)
}

type AttrInternalDate struct {
	fetchAttributeBase

	Date time.Time
}

func (a *AttrInternalDate) String() string {
	return fmt.Sprintf("INTERNALDATE %v", a.Date.Format(goimap.DateTimeLayout))
}

type AttrEnvelope struct {
	fetchAttributeBase

	Envelope *goimap.Envelope
}

func (a *AttrEnvelope) String() string {
	return fmt.Sprintf("ENVELOPE %q", a.Envelope.Subject)
}

// AttrBodyStructure is a BODY or BODYSTRUCTURE item; Extended is set for the latter.
type AttrBodyStructure struct {
	fetchAttributeBase

	BodyStructure *goimap.BodyStructure
}

func (a *AttrBodyStructure) String() string {
	if a.BodyStructure.Extended {
		return fmt.Sprintf("BODYSTRUCTURE %v/%v", a.BodyStructure.MIMEType, a.BodyStructure.MIMESubType)
	}

	return fmt.Sprintf("BODY %v/%v", a.BodyStructure.MIMEType, a.BodyStructure.MIMESubType)
}

// AttrBodySection is a body section item. RFC822, RFC822.HEADER and RFC822.TEXT are decoded
// into their BODY[] equivalents; Section.FetchItem() still returns the name the server sent.
// Data is nil if the server sent NIL.
type AttrBodySection struct {
	fetchAttributeBase

	Section *goimap.BodySectionName
	Data    []byte
}

func (a *AttrBodySection) String() string {
	return fmt.Sprintf("%v (%v bytes)", a.Section.FetchItem(), len(a.Data))
}

type AttrOther struct {
	fetchAttributeBase

	Name  string
	Value any
}

func (a *AttrOther) String() string {
	return fmt.Sprintf("%v %v", a.Name, a.Value)
}

func decodeFetch(fields []any) (Parsed, error) {
	n, err := decodeLeadingNumber("FETCH", fields)
	if err != nil {
		return nil, err
	}

	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: FETCH expects an attribute list", ErrMalformedResponse)
	}

	list, ok := fields[1].([]any)
	if !ok || len(list)%2 != 0 {
		return nil, fmt.Errorf("%w: FETCH attributes are not a list of pairs", ErrMalformedResponse)
	}

	fetch := &Fetch{SeqNum: imap.SeqID(n)}

	for i := 0; i < len(list); i += 2 {
		key, err := goimap.ParseString(list[i])
		if err != nil {
			return nil, fmt.Errorf("%w: FETCH item name: %v", ErrMalformedResponse, err)
		}

		attr, err := decodeFetchAttribute(goimap.FetchItem(strings.ToUpper(key)), list[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: FETCH %v: %v", ErrMalformedResponse, key, err)
		}

		fetch.Attributes = append(fetch.Attributes, attr)
	}

	return fetch, nil
}

func decodeFetchAttribute(key goimap.FetchItem, value any) (FetchAttribute, error) {
	switch key {
	case goimap.FetchFlags:
		flags, err := goimap.ParseStringList(value)
		if err != nil {
			return nil, err
		}

		return &AttrFlags{Flags: flags}, nil

	case goimap.FetchUid:
		uid, err := goimap.ParseNumber(value)
		if err != nil {
			return nil, err
		}

		return &AttrUID{UID: imap.UID(uid)}, nil

	case goimap.FetchRFC822Size:
		size, err := goimap.ParseNumber(value)
		if err != nil {
			return nil, err
		}

		return &AttrRFC822Size{Size: size}, nil

	case goimap.FetchInternalDate:
		raw, err := goimap.ParseString(value)
		if err != nil {
			return nil, err
		}

		date, err := time.Parse(goimap.DateTimeLayout, raw)
		if err != nil {
			return nil, err
		}

		return &AttrInternalDate{Date: date}, nil

	case goimap.FetchEnvelope:
		list, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("envelope is not a list, but a %T", value)
		}

		env := &goimap.Envelope{}

		if err := env.Parse(list); err != nil {
			return nil, err
		}

		return &AttrEnvelope{Envelope: env}, nil

	case goimap.FetchBody, goimap.FetchBodyStructure:
		list, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("body structure is not a list, but a %T", value)
		}

		bs := &goimap.BodyStructure{Extended: key == goimap.FetchBodyStructure}

		if err := bs.Parse(list); err != nil {
			return nil, err
		}

		return &AttrBodyStructure{BodyStructure: bs}, nil
	}

	if section, err := goimap.ParseBodySectionName(key); err == nil {
		data, err := decodeNString(value)
		if err != nil {
			return nil, err
		}

		return &AttrBodySection{Section: section, Data: data}, nil
	}

	frozen, err := freeze(value)
	if err != nil {
		return nil, err
	}

	return &AttrOther{Name: string(key), Value: frozen}, nil
}

func decodeNString(value any) ([]byte, error) {
	if value == nil {
		return nil, nil
	}

	s, err := goimap.ParseString(value)
	if err != nil {
		return nil, err
	}

	return []byte(s), nil
}
