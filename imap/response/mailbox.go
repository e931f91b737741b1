package response

import (
	"fmt"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/bradenaw/juniper/xslices"
	goimap "github.com/emersion/go-imap"
)

type Exists struct {
	mailboxDatumBase

	Count uint32
}

func (r *Exists) String() string {
	return fmt.Sprintf("Exists: %v", r.Count)
}

type Recent struct {
	mailboxDatumBase

	Count uint32
}

func (r *Recent) String() string {
	return fmt.Sprintf("Recent: %v", r.Count)
}

// Flags is the FLAGS response listing the flags defined in the mailbox.
type Flags struct {
	mailboxDatumBase

	Flags []string
}

func (r *Flags) String() string {
	return fmt.Sprintf("Flags: %v", r.Flags)
}

// List is a LIST or LSUB response. Name is kept exactly as sent; no mailbox name decoding is applied.
type List struct {
	mailboxDatumBase

	Attributes []imap.NameAttribute
	Delimiter  string
	Name       string
	Subscribed bool
}

func (r *List) String() string {
	kind := "List"

	if r.Subscribed {
		kind = "Lsub"
	}

	return fmt.Sprintf("%v: Attributes = %v, Delimiter = %q, Name = %q", kind, r.Attributes, r.Delimiter, r.Name)
}

// Status is a STATUS response. Items outside the known set are not kept.
type Status struct {
	mailboxDatumBase

	Mailbox string
	Items   []imap.StatusAttribute
}

func (r *Status) String() string {
	return fmt.Sprintf("Status: Mailbox = %q, Items = %v", r.Mailbox, r.Items)
}

func decodeExists(fields []any) (Parsed, error) {
	n, err := decodeLeadingNumber("EXISTS", fields)
	if err != nil {
		return nil, err
	}

	return &Exists{Count: n}, nil
}

func decodeRecent(fields []any) (Parsed, error) {
	n, err := decodeLeadingNumber("RECENT", fields)
	if err != nil {
		return nil, err
	}

	return &Recent{Count: n}, nil
}

func decodeFlags(fields []any) (Parsed, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("%w: FLAGS expects a flag list", ErrMalformedResponse)
	}

	flags, err := goimap.ParseStringList(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: FLAGS: %v", ErrMalformedResponse, err)
	}

	return &Flags{Flags: flags}, nil
}

func decodeList(subscribed bool) decoder {
	return func(fields []any) (Parsed, error) {
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: LIST expects attributes, delimiter and name", ErrMalformedResponse)
		}

		attrs, err := goimap.ParseStringList(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: LIST attributes: %v", ErrMalformedResponse, err)
		}

		var delimiter string

		if fields[1] != nil {
			if delimiter, err = goimap.ParseString(fields[1]); err != nil {
				return nil, fmt.Errorf("%w: LIST delimiter: %v", ErrMalformedResponse, err)
			}
		}

		name, err := goimap.ParseString(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: LIST name: %v", ErrMalformedResponse, err)
		}

		return &List{
			Attributes: xslices.Map(attrs, imap.NewNameAttribute),
			Delimiter:  delimiter,
			Name:       name,
			Subscribed: subscribed,
		}, nil
	}
}

func decodeStatus(fields []any) (Parsed, error) {
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: STATUS expects a mailbox and an item list", ErrMalformedResponse)
	}

	mailbox, err := goimap.ParseString(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: STATUS mailbox: %v", ErrMalformedResponse, err)
	}

	list, ok := fields[1].([]any)
	if !ok || len(list)%2 != 0 {
		return nil, fmt.Errorf("%w: STATUS items are not a list of pairs", ErrMalformedResponse)
	}

	status := &Status{Mailbox: mailbox}

	for i := 0; i < len(list); i += 2 {
		key, err := goimap.ParseString(list[i])
		if err != nil {
			return nil, fmt.Errorf("%w: STATUS item name: %v", ErrMalformedResponse, err)
		}

		item, ok := imap.ParseStatusItem(key)
		if !ok {
			continue
		}

		value, err := goimap.ParseNumber(list[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: STATUS %v: %v", ErrMalformedResponse, key, err)
		}

		status.Items = append(status.Items, imap.StatusAttribute{Item: item, Value: value})
	}

	return status, nil
}

func decodeLeadingNumber(name string, fields []any) (uint32, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %v expects a number", ErrMalformedResponse, name)
	}

	n, err := goimap.ParseNumber(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v: %v", ErrMalformedResponse, name, err)
	}

	return n, nil
}
