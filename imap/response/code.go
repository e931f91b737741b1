package response

import (
	"fmt"

	"github.com/ProtonMail/imapclient/imap"
	goimap "github.com/emersion/go-imap"
)

// Code is a response code carried by a status response. The set of implementations is closed;
// codes without a dedicated type are kept as CodeOther.
type Code interface {
	String() string

	_isCode()
}

type codeBase struct{}

func (codeBase) _isCode() {}

type CodeUIDValidity struct {
	codeBase

	UIDValidity imap.UID
}

func (c *CodeUIDValidity) String() string {
	return fmt.Sprintf("UIDVALIDITY %v", c.UIDValidity)
}

type CodeUIDNext struct {
	codeBase

	UIDNext imap.UID
}

func (c *CodeUIDNext) String() string {
	return fmt.Sprintf("UIDNEXT %v", c.UIDNext)
}

type CodeUnseen struct {
	codeBase

	SeqNum imap.SeqID
}

func (c *CodeUnseen) String() string {
	return fmt.Sprintf("UNSEEN %v", c.SeqNum)
}

type CodePermanentFlags struct {
	codeBase

	Flags []string
}

func (c *CodePermanentFlags) String() string {
	return fmt.Sprintf("PERMANENTFLAGS %v", c.Flags)
}

type CodeCapability struct {
	codeBase

	Caps []imap.Capability
}

func (c *CodeCapability) String() string {
	return fmt.Sprintf("CAPABILITY %v", c.Caps)
}

type CodeOther struct {
	codeBase

	Name      string
	Arguments []any
}

func (c *CodeOther) String() string {
	if len(c.Arguments) == 0 {
		return c.Name
	}

	return fmt.Sprintf("%v %v", c.Name, c.Arguments)
}

func decodeCode(name goimap.StatusRespCode, args []any) (Code, error) {
	switch name {
	case "":
		return nil, nil

	case goimap.CodeUidValidity:
		n, err := decodeSingleNumber(name, args)
		if err != nil {
			return nil, err
		}

		return &CodeUIDValidity{UIDValidity: imap.UID(n)}, nil

	case goimap.CodeUidNext:
		n, err := decodeSingleNumber(name, args)
		if err != nil {
			return nil, err
		}

		return &CodeUIDNext{UIDNext: imap.UID(n)}, nil

	case goimap.CodeUnseen:
		n, err := decodeSingleNumber(name, args)
		if err != nil {
			return nil, err
		}

		return &CodeUnseen{SeqNum: imap.SeqID(n)}, nil

	case goimap.CodePermanentFlags:
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %v expects a flag list", ErrMalformedResponse, name)
		}

		flags, err := goimap.ParseStringList(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v: %v", ErrMalformedResponse, name, err)
		}

		return &CodePermanentFlags{Flags: flags}, nil

	case goimap.CodeCapability:
		caps, err := decodeCapabilities(args)
		if err != nil {
			return nil, err
		}

		return &CodeCapability{Caps: caps}, nil

	default:
		frozen, err := freezeFields(args)
		if err != nil {
			return nil, err
		}

		return &CodeOther{Name: string(name), Arguments: frozen}, nil
	}
}

func decodeSingleNumber(name goimap.StatusRespCode, args []any) (uint32, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %v expects one number", ErrMalformedResponse, name)
	}

	n, err := goimap.ParseNumber(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %v: %v", ErrMalformedResponse, name, err)
	}

	return n, nil
}
